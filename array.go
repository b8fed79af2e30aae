package toml

// parseArray parses an array literal starting at the '[' at pos. Elements
// may be of mixed types (TOML v1.0.0 relaxed the old homogeneity rule),
// may span multiple lines, and comments and whitespace may freely
// separate them; a trailing comma after the last element is permitted.
func parseArray(src string, pos int, parseFloat FloatParser) (*Array, int, *ParseError) {
	pos++ // consume '['
	arr := newArray()

	pos, err := skipCommentsAndArrayWS(src, pos)
	if err != nil {
		return nil, pos, err
	}
	if pos < len(src) && src[pos] == ']' {
		return arr, pos + 1, nil
	}

	for {
		v, next, verr := parseValue(src, pos, parseFloat)
		if verr != nil {
			return nil, pos, verr
		}
		arr.append(v)
		pos = next

		pos, err = skipCommentsAndArrayWS(src, pos)
		if err != nil {
			return nil, pos, err
		}
		if pos >= len(src) {
			return nil, pos, errAt(KindSyntax, src, pos, "unterminated array")
		}
		switch src[pos] {
		case ',':
			pos++
			pos, err = skipCommentsAndArrayWS(src, pos)
			if err != nil {
				return nil, pos, err
			}
			if pos < len(src) && src[pos] == ']' {
				return arr, pos + 1, nil
			}
		case ']':
			return arr, pos + 1, nil
		default:
			return nil, pos, errAt(KindSyntax, src, pos, "expected ',' or ']' in array, found %q", previewByte(src, pos))
		}
	}
}
