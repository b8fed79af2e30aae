package toml

import "testing"

func TestParseArraySimple(t *testing.T) {
	v, pos, err := parseValue(`[1, 2, 3]`, 0, defaultFloatParser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr := v.(*Array)
	if arr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", arr.Len())
	}
	for i, want := range []int64{1, 2, 3} {
		if got := arr.Get(i); got != want {
			t.Errorf("Get(%d) = %v, want %v", i, got, want)
		}
	}
	if pos != len(`[1, 2, 3]`) {
		t.Errorf("pos = %d, want %d", pos, len(`[1, 2, 3]`))
	}
}

func TestParseArrayEmpty(t *testing.T) {
	v, _, err := parseValue(`[]`, 0, defaultFloatParser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(*Array).Len() != 0 {
		t.Errorf("expected empty array")
	}
}

func TestParseArrayTrailingComma(t *testing.T) {
	v, _, err := parseValue(`[1, 2, 3,]`, 0, defaultFloatParser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(*Array).Len() != 3 {
		t.Errorf("Len() = %d, want 3", v.(*Array).Len())
	}
}

func TestParseArrayMultilineWithComments(t *testing.T) {
	src := "[\n  1, # one\n  2, # two\n  3\n]"
	v, _, err := parseValue(src, 0, defaultFloatParser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(*Array).Len() != 3 {
		t.Errorf("Len() = %d, want 3", v.(*Array).Len())
	}
}

func TestParseArrayHeterogeneous(t *testing.T) {
	v, _, err := parseValue(`[1, "two", 3.0, true]`, 0, defaultFloatParser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr := v.(*Array)
	if arr.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", arr.Len())
	}
}

func TestParseArrayOfInlineTablesFreezesElements(t *testing.T) {
	v, _, err := parseValue(`[{x = 1}, {y = 2}]`, 0, defaultFloatParser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr := v.(*Array)
	first := arr.Get(0).(*Table)
	if !first.frozen {
		t.Error("expected inline-table array element to be frozen")
	}
}

func TestParseArrayUnterminated(t *testing.T) {
	if _, _, err := parseValue(`[1, 2`, 0, defaultFloatParser); err == nil {
		t.Fatal("expected error for unterminated array, got none")
	}
}
