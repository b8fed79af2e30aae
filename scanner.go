package toml

// Scanner primitives: pure, position-tracking inspection of the source
// string. None of these mutate shared state; each takes the byte offset
// they start at and returns the offset they stopped at. Grounded on the
// teacher's lexer primitives (isDigit, scanWhitespace, scanComment,
// peek/advance) but reshaped as free functions over (src, pos) rather
// than methods on a stateful lexer, since the value parser and the
// assembler both need them and neither owns "the" lexer.

func isBareKeyByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctDigit(c byte) bool { return c >= '0' && c <= '7' }
func isBinDigit(c byte) bool { return c == '0' || c == '1' }

func isControlByte(c byte) bool {
	return c <= 0x1F || c == 0x7F
}

// skipChars advances pos over src while the current byte is in chars.
func skipChars(src string, pos int, chars string) int {
	for pos < len(src) && indexByte(chars, src[pos]) {
		pos++
	}
	return pos
}

func indexByte(set string, c byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

// skipInlineWhitespace advances over runs of plain space/tab only (the
// whitespace legal between tokens on a single logical line).
func skipInlineWhitespace(src string, pos int) int {
	for pos < len(src) && (src[pos] == ' ' || src[pos] == '\t') {
		pos++
	}
	return pos
}

// skipComment consumes a '#' through (but not including) the newline
// that ends it, failing if a disallowed control character appears first.
func skipComment(src string, pos int) (int, *ParseError) {
	start := pos
	if pos >= len(src) || src[pos] != '#' {
		return pos, nil
	}
	pos++
	for pos < len(src) && src[pos] != '\n' {
		if src[pos] != '\t' && isControlByte(src[pos]) {
			return pos, errAt(KindSyntax, src, pos, "control character in comment")
		}
		pos++
	}
	_ = start
	return pos, nil
}

// skipCommentsAndArrayWS advances over any mixture of plain whitespace,
// newlines, and comments — the set of things that may freely separate
// array elements and inline-table pairs across multiple lines (for
// arrays; inline tables additionally forbid the newlines, enforced by
// the caller, not here).
func skipCommentsAndArrayWS(src string, pos int) (int, *ParseError) {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\n':
			pos++
		case '\r':
			// Newlines are normalized to '\n' before this runs; a bare '\r'
			// here would already have been rejected by normalizeNewlines.
			pos++
		case '#':
			next, err := skipComment(src, pos)
			if err != nil {
				return pos, err
			}
			pos = next
		default:
			return pos, nil
		}
	}
	return pos, nil
}

// skipUntil advances pos until it reaches the expect byte, failing with
// errKind and errMsg if any byte in errOn is encountered first.
func skipUntil(src string, pos int, expect byte, errOn string, errKind Kind, errMsg string) (int, *ParseError) {
	for pos < len(src) {
		if src[pos] == expect {
			return pos, nil
		}
		if indexByte(errOn, src[pos]) {
			return pos, errAt(errKind, src, pos, "%s", errMsg)
		}
		pos++
	}
	return pos, errAt(errKind, src, pos, "%s", errMsg)
}
