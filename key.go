package toml

import "strings"

// parseKeyPart parses one key-part (bare key or single-line quoted
// string) starting at pos and returns its unquoted text and the
// position just past it. Grounded on the teacher's parseSimpleKey, but
// operating directly on the source instead of a pre-lexed token.
func parseKeyPart(src string, pos int) (string, int, *ParseError) {
	if pos >= len(src) {
		return "", pos, errAt(KindSyntax, src, pos, "expected key, found end of input")
	}
	switch src[pos] {
	case '"':
		return parseBasicStringKeyPart(src, pos)
	case '\'':
		return parseLiteralStringKeyPart(src, pos)
	default:
		return parseBareKeyPart(src, pos)
	}
}

func parseBareKeyPart(src string, pos int) (string, int, *ParseError) {
	start := pos
	for pos < len(src) && isBareKeyByte(src[pos]) {
		pos++
	}
	if pos == start {
		return "", pos, errAt(KindSyntax, src, pos, "expected key, found %q", previewByte(src, pos))
	}
	return src[start:pos], pos, nil
}

func parseBasicStringKeyPart(src string, pos int) (string, int, *ParseError) {
	end, err := findBasicStringEnd(src, pos+1)
	if err != nil {
		return "", pos, err
	}
	raw := src[pos+1 : end]
	if kind, msg := validateBasicContent(raw, false); msg != "" {
		return "", pos, errAt(kind, src, pos, "%s", msg)
	}
	return unescapeBasic(raw), end + 1, nil
}

func parseLiteralStringKeyPart(src string, pos int) (string, int, *ParseError) {
	end, err := findLiteralStringEnd(src, pos+1)
	if err != nil {
		return "", pos, err
	}
	raw := src[pos+1 : end]
	if kind, msg := validateLiteralContent(raw, false); msg != "" {
		return "", pos, errAt(kind, src, pos, "%s", msg)
	}
	return raw, end + 1, nil
}

// parseKey parses a (possibly dotted) key starting at pos, returning its
// parts in order and the position just past the last part. Whitespace
// may surround each dot.
func parseKey(src string, pos int) ([]string, int, *ParseError) {
	part, pos2, err := parseKeyPart(src, pos)
	if err != nil {
		return nil, pos, err
	}
	parts := []string{part}
	pos = pos2

	for {
		save := pos
		pos = skipInlineWhitespace(src, pos)
		if pos >= len(src) || src[pos] != '.' {
			pos = save
			break
		}
		pos++ // consume '.'
		pos = skipInlineWhitespace(src, pos)
		part, pos2, err = parseKeyPart(src, pos)
		if err != nil {
			return nil, pos, err
		}
		parts = append(parts, part)
		pos = pos2
	}

	return parts, pos, nil
}

func previewByte(src string, pos int) string {
	if pos >= len(src) {
		return "<eof>"
	}
	return string(src[pos])
}

func joinKey(parts []string) string {
	return strings.Join(parts, ".")
}
