package toml

import (
	"math"
	"strconv"
	"strings"
)

// numberTokenEnd returns the offset just past the maximal run of bytes
// that could belong to a number or datetime literal starting at pos:
// ASCII letters/digits, '+', '-', '.', ':', and '_'. The caller classifies
// and validates the resulting lexical substring; this function only finds
// its extent so callers don't need their own bespoke scan loops.
func numberTokenEnd(src string, pos int) int {
	start := pos
	if pos < len(src) && (src[pos] == '+' || src[pos] == '-') {
		pos++
	}
	for pos < len(src) {
		c := src[pos]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z',
			c == '.', c == ':', c == '_', c == '+', c == '-':
			pos++
		default:
			if pos == start {
				return pos
			}
			return pos
		}
	}
	return pos
}

// parseNumber parses the integer or float literal lexical (already
// isolated by the caller, e.g. via numberTokenEnd) and returns its value.
// lexical must not contain surrounding whitespace.
func parseNumber(src string, offset int, lexical string, parseFloat FloatParser) (any, *ParseError) {
	if lexical == "inf" || lexical == "+inf" || lexical == "-inf" {
		return parseFloatLexical(src, offset, lexical, parseFloat)
	}
	if lexical == "nan" || lexical == "+nan" || lexical == "-nan" {
		return parseFloatLexical(src, offset, lexical, parseFloat)
	}

	if kind, ok := intPrefixKind(lexical); ok {
		return parsePrefixedInt(src, offset, lexical, kind)
	}

	if looksLikeFloat(lexical) {
		return parseFloatLexical(src, offset, lexical, parseFloat)
	}

	return parseDecInt(src, offset, lexical)
}

func parseSpecialFloat(lexical string) float64 {
	switch lexical {
	case "inf", "+inf":
		return math.Inf(1)
	case "-inf":
		return math.Inf(-1)
	case "nan", "+nan", "-nan":
		return math.NaN()
	}
	return 0
}

// intPrefixKind reports whether lexical uses a 0x/0o/0b radix prefix.
func intPrefixKind(lexical string) (byte, bool) {
	s := lexical
	if len(s) < 2 || s[0] != '0' {
		return 0, false
	}
	switch s[1] {
	case 'x', 'o', 'b':
		return s[1], true
	}
	return 0, false
}

func parsePrefixedInt(src string, offset int, lexical string, kind byte) (any, *ParseError) {
	digits := lexical[2:]
	if digits == "" || digits[0] == '_' || digits[len(digits)-1] == '_' || strings.Contains(digits, "__") {
		return nil, errAt(KindSyntax, src, offset, "malformed integer %q", lexical)
	}
	clean := strings.ReplaceAll(digits, "_", "")

	var base int
	var validDigit func(byte) bool
	switch kind {
	case 'x':
		base, validDigit = 16, isHexDigit
	case 'o':
		base, validDigit = 8, isOctDigit
	case 'b':
		base, validDigit = 2, isBinDigit
	}
	for i := 0; i < len(clean); i++ {
		if !validDigit(clean[i]) {
			return nil, errAt(KindSyntax, src, offset, "invalid digit in %q", lexical)
		}
	}

	n, err := strconv.ParseInt(clean, base, 64)
	if err != nil {
		return nil, errAt(KindSemantic, src, offset, "integer %q out of range", lexical)
	}
	return n, nil
}

func parseDecInt(src string, offset int, lexical string) (any, *ParseError) {
	s := lexical
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, errAt(KindSyntax, src, offset, "malformed integer %q", lexical)
	}
	if len(s) > 1 && s[0] == '0' {
		return nil, errAt(KindSyntax, src, offset, "leading zero in integer %q", lexical)
	}
	if s[0] == '_' || s[len(s)-1] == '_' || strings.Contains(s, "__") {
		return nil, errAt(KindSyntax, src, offset, "malformed integer %q", lexical)
	}
	clean := strings.ReplaceAll(s, "_", "")
	for i := 0; i < len(clean); i++ {
		if !isDigit(clean[i]) {
			return nil, errAt(KindSyntax, src, offset, "invalid digit in integer %q", lexical)
		}
	}

	full := clean
	if neg {
		full = "-" + clean
	}
	n, err := strconv.ParseInt(full, 10, 64)
	if err != nil {
		return nil, errAt(KindSemantic, src, offset, "integer %q out of range", lexical)
	}
	return n, nil
}

// looksLikeFloat reports whether lexical has a decimal point, or an
// exponent marker not already consumed as part of a radix-prefixed
// integer (that case is filtered out earlier by intPrefixKind).
func looksLikeFloat(lexical string) bool {
	return strings.ContainsAny(lexical, ".eE")
}

func parseFloatLexical(src string, offset int, lexical string, parseFloat FloatParser) (any, *ParseError) {
	if msg := validateFloatLexical(lexical); msg != "" {
		return nil, errAt(KindSyntax, src, offset, "%s", msg)
	}
	clean := strings.ReplaceAll(lexical, "_", "")

	v, err := parseFloat(clean)
	if err != nil {
		return nil, errAt(KindSemantic, src, offset, "parsing float %q: %s", lexical, err)
	}
	switch v.(type) {
	case *Table, *Array:
		return nil, errAt(KindUsage, src, offset, "FloatParser must not return a table or array")
	}
	return v, nil
}

// defaultFloatParser is the FloatParser used when ParseText/ParseBytes is
// called with a nil one: plain float64 via strconv.
func defaultFloatParser(lexical string) (any, error) {
	switch lexical {
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return parseSpecialFloat(lexical), nil
	}
	return strconv.ParseFloat(lexical, 64)
}

// validateFloatLexical checks underscore placement and overall shape
// before handing the cleaned digits to the FloatParser. strconv (or a
// custom parser) would accept some strings TOML forbids, like "1__0.0"
// after underscore stripping turning into "10.0" silently, or ".5" with
// no integer part, so this runs first.
func validateFloatLexical(lexical string) string {
	switch lexical {
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return ""
	}
	s := lexical
	if s == "" {
		return "empty float literal"
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return "malformed float literal"
	}

	intPart := s
	if i := strings.IndexAny(s, ".eE"); i >= 0 {
		intPart = s[:i]
	}
	if intPart == "" || (len(intPart) > 1 && intPart[0] == '0') {
		return "malformed float literal: leading zero"
	}
	if intPart[0] == '_' || intPart[len(intPart)-1] == '_' {
		return "malformed float literal"
	}
	for i := 0; i < len(intPart); i++ {
		if intPart[i] != '_' && !isDigit(intPart[i]) {
			return "malformed float literal"
		}
	}

	rest := s[len(intPart):]
	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]
		frac := rest
		if i := strings.IndexAny(rest, "eE"); i >= 0 {
			frac = rest[:i]
		}
		if frac == "" || frac[0] == '_' || frac[len(frac)-1] == '_' {
			return "malformed float literal: fractional part"
		}
		for i := 0; i < len(frac); i++ {
			if frac[i] != '_' && !isDigit(frac[i]) {
				return "malformed float literal"
			}
		}
		rest = rest[len(frac):]
	}
	if strings.HasPrefix(rest, "e") || strings.HasPrefix(rest, "E") {
		exp := rest[1:]
		if exp != "" && (exp[0] == '+' || exp[0] == '-') {
			exp = exp[1:]
		}
		if exp == "" || exp[0] == '_' || exp[len(exp)-1] == '_' {
			return "malformed float literal: exponent"
		}
		for i := 0; i < len(exp); i++ {
			if exp[i] != '_' && !isDigit(exp[i]) {
				return "malformed float literal"
			}
		}
		rest = ""
	}
	if rest != "" {
		return "malformed float literal"
	}
	if strings.Contains(lexical, "__") {
		return "malformed float literal: repeated underscore"
	}
	return ""
}
