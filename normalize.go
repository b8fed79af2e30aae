package toml

import "strings"

// normalizeNewlines implements the newline pre-processing spec'd for
// ParseText: every CRLF pair becomes a single LF, and a bare CR (one not
// immediately followed by LF) is an error everywhere except inside a
// multi-line literal string, where it is kept as literal content.
//
// Recognising multi-line literal string regions here mirrors the same
// triple-quote lookahead findMLLiteralStringEnd uses in strings.go;
// duplicating that state machine, rather than sharing it, keeps this pass
// a cheap single scan over the raw bytes before any token is produced.
func normalizeNewlines(src string) (string, error) {
	if !strings.ContainsAny(src, "\r") {
		return src, nil
	}

	var b strings.Builder
	b.Grow(len(src))

	const (
		stateBare = iota
		stateBasic
		stateMLBasic
		stateLiteral
		stateMLLiteral
		stateComment
	)
	state := stateBare

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch state {
		case stateBasic:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				i++
				b.WriteByte(src[i])
				continue
			}
			if c == '"' {
				state = stateBare
			}
			continue
		case stateMLBasic:
			if c == '\\' && i+1 < len(src) && src[i+1] != '\r' {
				b.WriteByte(c)
				i++
				b.WriteByte(src[i])
				continue
			}
			if c == '"' && strings.HasPrefix(src[i:], `"""`) {
				n := 3
				for n < 5 && i+n < len(src) && src[i+n] == '"' {
					n++
				}
				b.WriteString(src[i : i+n])
				i += n - 1
				state = stateBare
				continue
			}
			if err := writeNewlineAware(&b, src, &i, false); err != nil {
				return "", err
			}
			continue
		case stateLiteral:
			b.WriteByte(c)
			if c == '\'' {
				state = stateBare
			}
			continue
		case stateMLLiteral:
			if c == '\'' && strings.HasPrefix(src[i:], "'''") {
				n := 3
				for n < 5 && i+n < len(src) && src[i+n] == '\'' {
					n++
				}
				b.WriteString(src[i : i+n])
				i += n - 1
				state = stateBare
				continue
			}
			if err := writeNewlineAware(&b, src, &i, true); err != nil {
				return "", err
			}
			continue
		case stateComment:
			b.WriteByte(c)
			if c == '\n' {
				state = stateBare
			} else if c == '\r' {
				// A comment is terminated by the line ending; defer to the
				// bare-state newline handling on the next iteration by not
				// consuming it here.
				state = stateBare
				i--
			}
			continue
		}

		// stateBare
		switch {
		case c == '#':
			b.WriteByte(c)
			state = stateComment
		case c == '"':
			if strings.HasPrefix(src[i:], `"""`) {
				b.WriteString(`"""`)
				i += 2
				state = stateMLBasic
			} else {
				b.WriteByte(c)
				state = stateBasic
			}
		case c == '\'':
			if strings.HasPrefix(src[i:], "'''") {
				b.WriteString("'''")
				i += 2
				state = stateMLLiteral
			} else {
				b.WriteByte(c)
				state = stateLiteral
			}
		case c == '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				b.WriteByte('\n')
				i++
			} else {
				return "", errAt(KindSyntax, src, i, "bare carriage return not followed by line feed")
			}
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

// writeNewlineAware handles a single byte at *i while inside a multi-line
// string body, collapsing CRLF to LF and, for literal strings only,
// passing a bare CR through untouched instead of erroring.
func writeNewlineAware(b *strings.Builder, src string, i *int, allowBareCR bool) error {
	c := src[*i]
	if c != '\r' {
		b.WriteByte(c)
		return nil
	}
	if *i+1 < len(src) && src[*i+1] == '\n' {
		b.WriteByte('\n')
		*i++
		return nil
	}
	if allowBareCR {
		b.WriteByte('\r')
		return nil
	}
	return errAt(KindSyntax, src, *i, "bare carriage return not followed by line feed in multi-line basic string")
}
