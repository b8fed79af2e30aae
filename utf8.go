package toml

import (
	"fmt"
	"unicode/utf8"
)

// validateUTF8 checks that data contains only valid UTF-8, returning a
// description of the first violation found, or "" if none.
func validateUTF8(data []byte) string {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Sprintf("invalid UTF-8 byte at position %d", i)
		}
		i += size
	}
	return ""
}
