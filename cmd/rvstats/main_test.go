package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `<html><head><title>RV log</title></head><body><div class="right">
<code>2021-03-01 08:00:00 userA bought Coffee for 3.50 €</code>
<code>2021-03-01 09:00:00 userA deposited 10.00 €</code>
<code>2022-01-03 12:00:00 userA bought Coffee for 1.00 €</code>
<code>Balance: 5.50 €</code>
</div></body></html>`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rv.html")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--log-level", "disabled"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	rootCmd := newRootCmd()
	assert.NotNil(t, rootCmd, "rootCmd should be defined")
	assert.Equal(t, "rvstats", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "vending machine")
	assert.Contains(t, rootCmd.Long, "RV Stats")

	names := []string{}
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "summary")
	assert.Contains(t, names, "export")
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "summary", writeSample(t))
	require.NoError(t, err)

	assert.Contains(t, out, "RV log")
	assert.Contains(t, out, "5.50")
	assert.Contains(t, out, "Most bought items")
	assert.Contains(t, out, "Coffee")
}

func TestSummaryCommand_YearFilter(t *testing.T) {
	out, err := execute(t, "summary", "--from-year", "2022", writeSample(t))
	require.NoError(t, err)

	// Only the 2022 purchase remains: balance is -1.00.
	assert.Contains(t, out, "-1.00")
	assert.NotContains(t, out, "10.00")
}

func TestSummaryCommand_RequiresPath(t *testing.T) {
	_, err := execute(t, "summary")
	assert.Error(t, err)
}

func TestSummaryCommand_MalformedLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.html")
	require.NoError(t, os.WriteFile(path, []byte(`<div class="right"><code>2021-03-01 x y</code><code>end</code></div>`), 0644))

	_, err := execute(t, "summary", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed line")
}

func TestExportCommand_CSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tables")
	_, err := execute(t, "export", "--out", dir, writeSample(t))
	require.NoError(t, err)

	for _, name := range []string{"purchases.csv", "deposits.csv", "balance.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestExportCommand_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.json")
	_, err := execute(t, "export", "--format", "json", "-o", path, writeSample(t))
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Len(t, decoded["purchases"], 2)
	assert.Len(t, decoded["balance"], 3)
}

func TestExportCommand_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.xlsx")
	_, err := execute(t, "export", "--format", "xlsx", "-o", path, writeSample(t))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "export", "--format", "pdf", "-o", t.TempDir(), writeSample(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
