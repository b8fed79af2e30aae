package toml

import "strings"

// parseValue parses one TOML value starting at pos — string, integer,
// float, boolean, date/time, array, or inline table — and returns it
// together with the position just past it. This is the single dispatch
// point arrays, inline tables, and key/value lines all funnel through.
func parseValue(src string, pos int, parseFloat FloatParser) (any, int, *ParseError) {
	if pos >= len(src) {
		return nil, pos, errAt(KindSyntax, src, pos, "expected value, found end of input")
	}

	switch {
	case strings.HasPrefix(src[pos:], `"""`):
		return parseMultiLineBasicString(src, pos)
	case src[pos] == '"':
		return parseSingleLineBasicString(src, pos)
	case strings.HasPrefix(src[pos:], "'''"):
		return parseMultiLineLiteralString(src, pos)
	case src[pos] == '\'':
		return parseSingleLineLiteralString(src, pos)
	case src[pos] == '[':
		return parseArray(src, pos, parseFloat)
	case src[pos] == '{':
		return parseInlineTable(src, pos, parseFloat)
	case strings.HasPrefix(src[pos:], "true"):
		return true, pos + 4, nil
	case strings.HasPrefix(src[pos:], "false"):
		return false, pos + 5, nil
	case isDigit(src[pos]) || src[pos] == '+' || src[pos] == '-',
		strings.HasPrefix(src[pos:], "inf"), strings.HasPrefix(src[pos:], "nan"):
		return parseNumberOrDateTime(src, pos, parseFloat)
	default:
		return nil, pos, errAt(KindSyntax, src, pos, "unexpected character %q, expected value", previewByte(src, pos))
	}
}

func parseNumberOrDateTime(src string, pos int, parseFloat FloatParser) (any, int, *ParseError) {
	end := numberTokenEnd(src, pos)
	// A date followed by a single space and a digit continues as the time
	// part of a date-time ("1979-05-27 07:32:00Z").
	if end+1 < len(src) && src[end] == ' ' && isDigit(src[end+1]) && dateOnlyRe.MatchString(src[pos:end]) {
		end = numberTokenEnd(src, end+1)
	}
	lexical := src[pos:end]

	if v, ok, err := parseDateTime(src, pos, lexical); ok {
		if err != nil {
			return nil, pos, err
		}
		return v, end, nil
	}

	v, err := parseNumber(src, pos, lexical, parseFloat)
	if err != nil {
		return nil, pos, err
	}
	return v, end, nil
}

func parseSingleLineBasicString(src string, pos int) (any, int, *ParseError) {
	end, err := findBasicStringEnd(src, pos+1)
	if err != nil {
		return nil, pos, err
	}
	raw := src[pos+1 : end]
	if kind, msg := validateBasicContent(raw, false); msg != "" {
		return nil, pos, errAt(kind, src, pos, "%s", msg)
	}
	return unescapeBasic(raw), end + 1, nil
}

func parseSingleLineLiteralString(src string, pos int) (any, int, *ParseError) {
	end, err := findLiteralStringEnd(src, pos+1)
	if err != nil {
		return nil, pos, err
	}
	raw := src[pos+1 : end]
	if kind, msg := validateLiteralContent(raw, false); msg != "" {
		return nil, pos, errAt(kind, src, pos, "%s", msg)
	}
	return raw, end + 1, nil
}

func parseMultiLineBasicString(src string, pos int) (any, int, *ParseError) {
	bodyStart := pos + 3
	end, err := findMLBasicStringEnd(src, bodyStart)
	if err != nil {
		return nil, pos, err
	}
	raw := stripFirstNewline(src[bodyStart:end])
	if kind, msg := validateBasicContent(raw, true); msg != "" {
		return nil, pos, errAt(kind, src, pos, "%s", msg)
	}
	return unescapeBasic(raw), end + 3, nil
}

func parseMultiLineLiteralString(src string, pos int) (any, int, *ParseError) {
	bodyStart := pos + 3
	end, err := findMLLiteralStringEnd(src, bodyStart)
	if err != nil {
		return nil, pos, err
	}
	raw := stripFirstNewline(src[bodyStart:end])
	if kind, msg := validateLiteralContent(raw, true); msg != "" {
		return nil, pos, errAt(kind, src, pos, "%s", msg)
	}
	return raw, end + 3, nil
}
