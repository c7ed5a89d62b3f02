package normalize

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Marker is the Latin-1 rendering of the UTF-8 lead byte 0xC3, the most
// common sign of a double-encoded name.
const Marker = "Ã"

// ErrEncoding is matched by every *EncodingError via errors.Is.
var ErrEncoding = errors.New("invalid encoding")

// EncodingError reports an item name that cannot be transcoded back to UTF-8.
type EncodingError struct {
	Input string
	Err   error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot repair %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("cannot repair %q: not valid UTF-8 after transcoding", e.Input)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// Repair is one textual substitution applied before transcoding.
type Repair struct {
	Old string
	New string
}

// DefaultRepairs are applied in order. The doubled marker must come last.
var DefaultRepairs = []Repair{
	{Old: "ÃP", New: "P"},
	{Old: "Ãv", New: "v"},
	{Old: "Ãp", New: "p"},
	{Old: "ÃÃ", New: "Ã"},
}

// Normalize repairs a name whose UTF-8 bytes were once decoded as Latin-1.
func Normalize(raw string) (string, error) {
	return NormalizeWith(raw, DefaultRepairs)
}

// NormalizeWith runs the given repairs and then transcodes the result:
// each character becomes one Latin-1 byte and the bytes are read as UTF-8.
// Input without the marker that does not survive the round trip was never
// mangled and is returned unchanged.
func NormalizeWith(raw string, repairs []Repair) (string, error) {
	s := raw
	for _, r := range repairs {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}

	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err == nil && utf8.Valid(b) {
		return string(b), nil
	}
	if !strings.Contains(raw, Marker) {
		return raw, nil
	}
	if err != nil {
		return "", &EncodingError{Input: raw, Err: err}
	}
	return "", &EncodingError{Input: raw}
}
