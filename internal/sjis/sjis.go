// Package sjis converts between Shift_JIS byte streams and Go strings.
//
// Decoding is strict: input that is not valid Shift_JIS fails instead of
// silently dropping or substituting bytes, because a garbled provider label
// would otherwise flow all the way into a mailed document. Encoding goes
// the other way with a documented fallback — when a rune has no Shift_JIS
// mapping the whole document is emitted as UTF-8 with a BOM instead.
package sjis

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/japanese"
)

// ErrInvalidEncoding indicates the input bytes are not valid Shift_JIS.
var ErrInvalidEncoding = errors.New("invalid Shift_JIS byte sequence")

// utf8BOM prefixes the UTF-8 fallback so spreadsheet tools detect the
// charset correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts Shift_JIS bytes to a string. It fails with
// ErrInvalidEncoding if any byte sequence is not valid Shift_JIS.
func Decode(data []byte) (string, error) {
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("sjis: decode: %w", err)
	}
	// The x/text decoder substitutes U+FFFD for invalid sequences rather
	// than erroring. Shift_JIS has no mapping for U+FFFD, so its presence
	// in the output can only mean the input was malformed.
	if strings.ContainsRune(string(out), '�') {
		return "", fmt.Errorf("sjis: decode: %w", ErrInvalidEncoding)
	}
	return string(out), nil
}

// Encode converts a string to Shift_JIS bytes. When the string contains a
// rune with no Shift_JIS mapping, it returns the UTF-8 encoding with a
// leading BOM instead; the second result reports whether the Shift_JIS
// path was taken.
func Encode(s string) ([]byte, bool) {
	out, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	if err == nil {
		return out, true
	}
	buf := make([]byte, 0, len(utf8BOM)+len(s))
	buf = append(buf, utf8BOM...)
	buf = append(buf, s...)
	return buf, false
}

// ReadFile reads one input file and decodes it in a single operation.
// The caller gets either the full decoded text or an error; there is no
// partial result.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("sjis: read %s: %w", path, err)
	}
	text, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("sjis: read %s: %w", path, err)
	}
	return text, nil
}
