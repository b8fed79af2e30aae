package toml

import "strings"

// Table is a TOML table: an ordered map from key to value. Every
// constructed node carries three provenance flags used to enforce
// TOML's table-redefinition rules — explicitlyCreated and
// isArrayOfTablesMember are the two the format itself distinguishes;
// frozen marks a table (or any of its descendants) that can no longer
// accept new keys once the inline table literal it came from has been
// fully parsed. Array-of-tables elements are not frozen.
//
// implicitViaKV additionally distinguishes a table that came into being
// because a dotted key/value line walked through it (never reopenable by
// a later [header]) from one that came into being because a [header]
// walked through it on the way to a deeper header (reopenable). TOML's
// own spec text doesn't name this distinction but its railroad examples
// require it.
type Table struct {
	order                 []string
	values                map[string]any
	explicitlyCreated     bool
	isArrayOfTablesMember bool
	frozen                bool
	implicitViaKV         bool
}

func newTable() *Table {
	return &Table{values: make(map[string]any)}
}

func (t *Table) set(key string, value any) {
	if _, exists := t.values[key]; !exists {
		t.order = append(t.order, key)
	}
	t.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (t *Table) Get(key string) (any, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the table's keys in the order they were first assigned.
func (t *Table) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len reports the number of keys directly stored in t.
func (t *Table) Len() int {
	return len(t.order)
}

func (t *Table) freeze() {
	if t.frozen {
		return
	}
	t.frozen = true
	for _, v := range t.values {
		switch vv := v.(type) {
		case *Table:
			vv.freeze()
		case *Array:
			for _, item := range vv.items {
				if it, ok := item.(*Table); ok {
					it.freeze()
				}
			}
		}
	}
}

// Array is a TOML array. isAOT marks an array that backs a [[header]]
// array-of-tables rather than an ordinary `[ ... ]` literal; only such
// arrays may be extended by a later [[header]] of the same name, and
// only their elements are *Table values.
type Array struct {
	items []any
	isAOT bool
}

func newArray() *Array {
	return &Array{}
}

func (a *Array) append(v any) {
	a.items = append(a.items, v)
}

// Len reports the number of elements in a.
func (a *Array) Len() int {
	return len(a.items)
}

// Get returns the element at index i.
func (a *Array) Get(i int) any {
	return a.items[i]
}

// descendPolicy selects how a dotted path walks through intermediate
// tables, mirroring the spec's own suggestion to implement header
// traversal, array-of-tables header traversal, and dotted key/value
// traversal as one walker parameterized by a policy rather than three
// near-duplicate functions.
type descendPolicy int

const (
	policyHeader descendPolicy = iota
	policyAOTHeader
	policyKVLine
)

// walkIntermediate walks parts from t, creating tables along the way as
// needed, and returns the table the LAST part of parts should be
// resolved against. It never creates or inspects the last part itself —
// callers handle that differently depending on whether they're opening a
// header, extending an array of tables, or setting a scalar leaf.
func walkIntermediate(src string, offset int, t *Table, parts []string, policy descendPolicy) (*Table, *ParseError) {
	for _, p := range parts {
		existing, ok := t.values[p]
		if !ok {
			nt := newTable()
			if policy == policyKVLine {
				nt.implicitViaKV = true
			}
			t.set(p, nt)
			t = nt
			continue
		}

		switch v := existing.(type) {
		case *Table:
			if v.frozen {
				return nil, errAt(KindSemantic, src, offset, "cannot extend frozen table %q", p)
			}
			t = v
		case *Array:
			if policy == policyKVLine {
				return nil, errAt(KindSemantic, src, offset, "cannot use dotted key to index into array %q", p)
			}
			if !v.isAOT || v.Len() == 0 {
				return nil, errAt(KindSemantic, src, offset, "%q is an array, not a table", p)
			}
			last := v.items[v.Len()-1].(*Table)
			if last.frozen {
				return nil, errAt(KindSemantic, src, offset, "cannot extend frozen table %q", p)
			}
			t = last
		default:
			return nil, errAt(KindSemantic, src, offset, "key %q is already defined as a non-table value", p)
		}
	}
	return t, nil
}

// openHeaderTable implements [a.b.c]: it walks to (creating as needed)
// and then opens or creates the final table named by parts.
func openHeaderTable(src string, offset int, root *Table, parts []string) (*Table, *ParseError) {
	parent, err := walkIntermediate(src, offset, root, parts[:len(parts)-1], policyHeader)
	if err != nil {
		return nil, err
	}
	last := parts[len(parts)-1]

	existing, ok := parent.values[last]
	if !ok {
		nt := newTable()
		nt.explicitlyCreated = true
		parent.set(last, nt)
		return nt, nil
	}

	switch v := existing.(type) {
	case *Table:
		if v.frozen {
			return nil, errAt(KindSemantic, src, offset, "table %q is frozen", joinKey(parts))
		}
		if v.explicitlyCreated {
			return nil, errAt(KindSemantic, src, offset, "table %q defined more than once", joinKey(parts))
		}
		if v.implicitViaKV {
			return nil, errAt(KindSemantic, src, offset, "table %q was already implicitly created by a dotted key and cannot be reopened", joinKey(parts))
		}
		if v.isArrayOfTablesMember {
			return nil, errAt(KindSemantic, src, offset, "%q names an array-of-tables element, not a table", joinKey(parts))
		}
		v.explicitlyCreated = true
		return v, nil
	case *Array:
		return nil, errAt(KindSemantic, src, offset, "%q is already defined as an array", joinKey(parts))
	default:
		return nil, errAt(KindSemantic, src, offset, "%q is already defined as a non-table value", joinKey(parts))
	}
}

// openAOTElement implements [[a.b.c]]: it walks to the parent of the
// named array (creating intermediate tables as needed, same as a header
// would), finds or creates the array itself, and appends a fresh table
// as its newest element.
func openAOTElement(src string, offset int, root *Table, parts []string) (*Table, *ParseError) {
	parent, err := walkIntermediate(src, offset, root, parts[:len(parts)-1], policyAOTHeader)
	if err != nil {
		return nil, err
	}
	last := parts[len(parts)-1]

	var arr *Array
	existing, ok := parent.values[last]
	if !ok {
		arr = newArray()
		arr.isAOT = true
		parent.set(last, arr)
	} else {
		a, isArr := existing.(*Array)
		if !isArr || !a.isAOT {
			return nil, errAt(KindSemantic, src, offset, "%q is already defined and is not an array of tables", joinKey(parts))
		}
		arr = a
	}

	nt := newTable()
	nt.explicitlyCreated = true
	nt.isArrayOfTablesMember = true
	arr.append(nt)
	return nt, nil
}

// setKV implements a key/value line (top-level, or the body of an inline
// table): it walks the dotted path's intermediate parts and assigns
// value to the final part, rejecting duplicate keys and writes through a
// frozen table.
func setKV(src string, offset int, t *Table, parts []string, value any) *ParseError {
	if t.frozen {
		return errAt(KindSemantic, src, offset, "cannot add key to frozen table")
	}
	target, err := walkIntermediate(src, offset, t, parts[:len(parts)-1], policyKVLine)
	if err != nil {
		return err
	}
	if target.frozen {
		return errAt(KindSemantic, src, offset, "cannot add key to frozen table")
	}
	last := parts[len(parts)-1]
	if _, exists := target.values[last]; exists {
		return errAt(KindSemantic, src, offset, "duplicate key %q", joinKey(parts))
	}
	target.set(last, value)
	return nil
}

// assembler drives the top-level document grammar: a sequence of
// key/value lines and [header]/[[header]] lines, each parsed with
// parseKey/parseValue and wired into the tree via the functions above.
type assembler struct {
	src        string
	pos        int
	parseFloat FloatParser
	root       *Table
	current    *Table
}

func newAssembler(src string, parseFloat FloatParser) *assembler {
	root := newTable()
	root.explicitlyCreated = true
	return &assembler{src: src, parseFloat: parseFloat, root: root, current: root}
}

func (a *assembler) run() (*Table, error) {
	pos, err := skipCommentsAndArrayWS(a.src, a.pos)
	if err != nil {
		return nil, err
	}
	a.pos = pos

	for a.pos < len(a.src) {
		if a.src[a.pos] == '[' {
			if err := a.parseTableHeaderLine(); err != nil {
				return nil, err
			}
		} else {
			if err := a.parseKVLine(); err != nil {
				return nil, err
			}
		}

		pos, err := skipCommentsAndArrayWS(a.src, a.pos)
		if err != nil {
			return nil, err
		}
		a.pos = pos
	}

	return a.root, nil
}

func (a *assembler) parseTableHeaderLine() *ParseError {
	start := a.pos
	isAOT := strings.HasPrefix(a.src[a.pos:], "[[")
	pos := a.pos + 1
	if isAOT {
		pos++
	}

	parts, pos, kerr := parseKey(a.src, pos)
	if kerr != nil {
		return kerr
	}

	if isAOT {
		if !strings.HasPrefix(a.src[pos:], "]]") {
			return errAt(KindSyntax, a.src, pos, "expected ']]' closing array-of-tables header")
		}
		pos += 2
		tbl, operr := openAOTElement(a.src, start, a.root, parts)
		if operr != nil {
			return operr
		}
		a.current = tbl
	} else {
		if pos >= len(a.src) || a.src[pos] != ']' {
			return errAt(KindSyntax, a.src, pos, "expected ']' closing table header")
		}
		pos++
		tbl, operr := openHeaderTable(a.src, start, a.root, parts)
		if operr != nil {
			return operr
		}
		a.current = tbl
	}

	end, eerr := expectEndOfLine(a.src, pos)
	if eerr != nil {
		return eerr
	}
	a.pos = end
	return nil
}

func (a *assembler) parseKVLine() *ParseError {
	start := a.pos
	parts, pos, kerr := parseKey(a.src, a.pos)
	if kerr != nil {
		return kerr
	}

	pos = skipInlineWhitespace(a.src, pos)
	if pos >= len(a.src) || a.src[pos] != '=' {
		return errAt(KindSyntax, a.src, pos, "expected '=' after key")
	}
	pos = skipInlineWhitespace(a.src, pos+1)

	value, pos, verr := parseValue(a.src, pos, a.parseFloat)
	if verr != nil {
		return verr
	}

	if serr := setKV(a.src, start, a.current, parts, value); serr != nil {
		return serr
	}

	end, eerr := expectEndOfLine(a.src, pos)
	if eerr != nil {
		return eerr
	}
	a.pos = end
	return nil
}

// expectEndOfLine requires that, past optional inline whitespace and an
// optional comment, the next thing is a newline or end of input.
func expectEndOfLine(src string, pos int) (int, *ParseError) {
	pos = skipInlineWhitespace(src, pos)
	if pos < len(src) && src[pos] == '#' {
		next, err := skipComment(src, pos)
		if err != nil {
			return pos, err
		}
		pos = next
	}
	if pos >= len(src) {
		return pos, nil
	}
	if src[pos] == '\n' {
		return pos + 1, nil
	}
	return pos, errAt(KindSyntax, src, pos, "expected newline, found %q", previewByte(src, pos))
}
