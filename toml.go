// Package toml parses TOML v1.0.0 documents into a tree of plain Go
// values: *Table, *Array, string, int64, float64 (or whatever a custom
// FloatParser returns), bool, and the four date/time types.
//
// The package does not preserve comments, whitespace, or key order for
// round-tripping, does not serialize TOML, and does not decode into
// caller-supplied structs. It only builds the value tree. Failures inside
// the document are reported as *ParseError; a nil input, a leading
// byte-order mark and a null byte are instead reported as the sentinels
// ErrNilInput, ErrBOMNotAllowed and ErrNullByte, which carry no position.
package toml

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for input-validation failures that are not tied to a
// specific byte offset within a (possibly non-existent) document.
var (
	ErrNilInput      = errors.New("toml: nil input")
	ErrBOMNotAllowed = errors.New("toml: byte-order mark not allowed")
	ErrNullByte      = errors.New("toml: null byte not allowed in source")
	ErrBareCR        = errors.New("toml: bare carriage return not allowed outside multi-line strings")
)

// Kind categorizes a ParseError for coarse-grained dispatch. Callers are
// told not to match on Message text; Kind is the stable part of the
// contract.
type Kind int

const (
	KindSyntax Kind = iota
	KindEncoding
	KindSemantic
	KindUsage
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindEncoding:
		return "encoding"
	case KindSemantic:
		return "semantic"
	case KindUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// ParseError reports a single positioned failure. Parsing aborts on the
// first error; no partial tree is ever returned alongside one.
type ParseError struct {
	Message string
	Kind    Kind
	Offset  int // byte offset into Source
	Line    int // 1-based
	Column  int // 1-based
	Source  string
}

func (e *ParseError) Error() string {
	lines := strings.Split(e.Source, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		return fmt.Sprintf("toml: parse error at offset %d: %s", e.Offset, e.Message)
	}
	lineContent := lines[e.Line-1]
	var buf strings.Builder
	fmt.Fprintf(&buf, "toml: parse error at line %d, column %d: %s\n", e.Line, e.Column, e.Message)
	fmt.Fprintf(&buf, "  %d | %s\n", e.Line, lineContent)
	buf.WriteString("    | ")
	for i := 1; i < e.Column; i++ {
		if i-1 < len(lineContent) && lineContent[i-1] == '\t' {
			buf.WriteByte('\t')
		} else {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString("^")
	return buf.String()
}

// newLineIndex computes the byte offset of the start of every line in
// src, so an offset can be converted to a 1-based (line, column) pair on
// demand rather than tracked eagerly through every scanner call.
func newLineIndex(src string) []int {
	idx := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// offsetToLineCol converts a byte offset into a 1-based line/column pair
// using a precomputed line-start index (see newLineIndex).
func offsetToLineCol(lineStarts []int, offset int) (line, col int) {
	lo, hi := 0, len(lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - lineStarts[lo] + 1
}

// errAt builds a *ParseError positioned at a byte offset within source.
func errAt(kind Kind, source string, offset int, format string, args ...any) *ParseError {
	line, col := offsetToLineCol(newLineIndex(source), offset)
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Kind:    kind,
		Offset:  offset,
		Line:    line,
		Column:  col,
		Source:  source,
	}
}

// ParseBytes decodes src as UTF-8 text and parses it as a TOML document.
// A leading byte-order mark is rejected: TOML has no BOM.
func ParseBytes(src []byte) (*Table, error) {
	if src == nil {
		return nil, ErrNilInput
	}
	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		return nil, ErrBOMNotAllowed
	}
	if msg := validateUTF8(src); msg != "" {
		return nil, errAt(KindEncoding, string(src), 0, "%s", msg)
	}
	return ParseText(string(src), nil)
}

// FloatParser converts the lexical form of a TOML float (sign preserved,
// underscores already stripped) into a caller-chosen numeric
// representation. It must not return a *Table or *Array; doing so is
// reported as a usage error.
type FloatParser func(lexical string) (any, error)

// ParseText parses src, which must already be a valid Go string (no
// further UTF-8 validation beyond what ParseBytes already performed, but
// ParseText itself is exported so callers starting from text rather than
// bytes don't pay for a round trip through []byte).
//
// parseFloat, if non-nil, is invoked exactly once per lexical float,
// otherwise floats decode to float64 via strconv.ParseFloat.
func ParseText(src string, parseFloat FloatParser) (*Table, error) {
	for i := 0; i < len(src); i++ {
		if src[i] == 0 {
			return nil, ErrNullByte
		}
	}

	normalized, err := normalizeNewlines(src)
	if err != nil {
		return nil, err
	}

	if parseFloat == nil {
		parseFloat = defaultFloatParser
	}

	asm := newAssembler(normalized, parseFloat)
	return asm.run()
}
