package normalize

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii untouched", "Coca Cola Zero", "Coca Cola Zero"},
		{"correct utf8 untouched", "Kaffee groß", "Kaffee groß"},
		{"e acute", "CafÃ©", "Café"},
		{"capital e acute", "Ã\u0089clair", "Éclair"},
		{"doubled marker", "ÃÃ\u0089clair", "Éclair"},
		{"marker before P", "ÃPepsi", "Pepsi"},
		{"marker before v", "Ãvitamin water", "vitamin water"},
		{"marker before p", "Ãpommes", "pommes"},
		{"umlauts", "KÃ¤se BrÃ¶tchen", "Käse Brötchen"},
		{"degree sign", "Temp 5Â°", "Temp 5°"},
		{"one half", "Â½ Sandwich", "½ Sandwich"},
		{"euro sign", "Preis 2 â\u0082¬", "Preis 2 €"},
		{"outside latin1 untouched", "Kaffee 2 €", "Kaffee 2 €"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Fixture(t *testing.T) {
	b, err := os.ReadFile(filepath.Join("testdata", "names.txt"))
	require.NoError(t, err)

	count := 0
	for _, line := range strings.Split(string(b), "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		mangled, want, ok := strings.Cut(line, "\t")
		require.True(t, ok, "malformed fixture line %q", line)

		got, err := Normalize(mangled)
		require.NoError(t, err, mangled)
		assert.Equal(t, want, got)
		count++
	}
	assert.Equal(t, 10, count)
}

func TestNormalize_NoCorruptedMarkersRemain(t *testing.T) {
	got, err := Normalize("ÃPizza ÃÃ\u0089pinards KÃ¤se")
	require.NoError(t, err)
	for _, m := range []string{"ÃÃ", "ÃP", "Ãv", "Ãp"} {
		assert.NotContains(t, got, m)
	}
	assert.Equal(t, "Pizza Épinards Käse", got)
}

func TestNormalize_InvalidUTF8(t *testing.T) {
	// A lone lead byte has no continuation byte.
	_, err := Normalize("Ã")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEncoding))

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "Ã", encErr.Input)
}

func TestNormalize_OutsideLatin1(t *testing.T) {
	_, err := Normalize("Ã© €")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestNormalizeWith_CustomRepairs(t *testing.T) {
	repairs := append([]Repair{{Old: "Ãx", New: "x"}}, DefaultRepairs...)
	got, err := NormalizeWith("Ãxylophon", repairs)
	require.NoError(t, err)
	assert.Equal(t, "xylophon", got)
}
