// Package colname converts between zero-based column indexes and
// spreadsheet column letter names (A, B, ..., Z, AA, AB, ...).
package colname

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidName indicates a column name that is empty, contains characters
// other than ASCII letters, or is too long for an int index.
var ErrInvalidName = errors.New("invalid column name")

// Encode returns the letter name of the zero-based column index n.
// Encode(0) is "A", Encode(25) is "Z" and Encode(26) is "AA".
// Negative indexes yield an empty string.
func Encode(n int) string {
	if n < 0 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for n >= 0 {
		i--
		buf[i] = byte('A' + n%26)
		n = n/26 - 1
	}
	return string(buf[i:])
}

// Decode returns the zero-based column index for a letter name.
// Lowercase ASCII letters are accepted.
func Decode(name string) (int, error) {
	if name == "" {
		return 0, ErrInvalidName
	}
	idx := -1
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
		d := int(c - 'A')
		if idx > (math.MaxInt-d)/26-1 {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidName, name)
		}
		idx = (idx+1)*26 + d
	}
	return idx, nil
}
