package toml

import (
	"math"
	"testing"
)

func TestParseIntegers(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"42", 42},
		{"+42", 42},
		{"-42", -42},
		{"0", 0},
		{"1_000_000", 1000000},
		{"0xDEADBEEF", 0xDEADBEEF},
		{"0xdead_beef", 0xdeadbeef},
		{"0o755", 0o755},
		{"0b1101_0110", 0b11010110},
		{"9223372036854775807", math.MaxInt64},
	}
	for _, tc := range cases {
		v, _, err := parseValue(tc.src, 0, defaultFloatParser)
		if err != nil {
			t.Fatalf("parseValue(%q): unexpected error: %v", tc.src, err)
		}
		got, ok := v.(int64)
		if !ok {
			t.Fatalf("parseValue(%q): got %T, want int64", tc.src, v)
		}
		if got != tc.want {
			t.Errorf("parseValue(%q) = %d, want %d", tc.src, got, tc.want)
		}
	}
}

func TestParseIntegerOverflow(t *testing.T) {
	_, _, err := parseValue("9223372036854775808", 0, defaultFloatParser)
	if err == nil {
		t.Fatal("expected overflow error, got none")
	}
	if err.Kind != KindSemantic {
		t.Errorf("Kind = %v, want %v", err.Kind, KindSemantic)
	}
}

func TestParseIntegerLeadingZero(t *testing.T) {
	if _, _, err := parseValue("007", 0, defaultFloatParser); err == nil {
		t.Fatal("expected error for leading zero, got none")
	}
}

func TestParseIntegerMalformedUnderscore(t *testing.T) {
	for _, src := range []string{"1__0", "_10", "10_", "1_x0"} {
		if _, _, err := parseValue(src, 0, defaultFloatParser); err == nil {
			t.Errorf("parseValue(%q): expected error, got none", src)
		}
	}
}

func TestParseFloats(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1.0", 1.0},
		{"-0.01", -0.01},
		{"3.1415", 3.1415},
		{"1e10", 1e10},
		{"1e+10", 1e10},
		{"1E-10", 1e-10},
		{"6.626e-34", 6.626e-34},
		{"9_224_617.445_991_228_313", 9224617.445991228313},
	}
	for _, tc := range cases {
		v, _, err := parseValue(tc.src, 0, defaultFloatParser)
		if err != nil {
			t.Fatalf("parseValue(%q): unexpected error: %v", tc.src, err)
		}
		got, ok := v.(float64)
		if !ok {
			t.Fatalf("parseValue(%q): got %T, want float64", tc.src, v)
		}
		if got != tc.want {
			t.Errorf("parseValue(%q) = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestParseSpecialFloats(t *testing.T) {
	cases := map[string]func(float64) bool{
		"inf":  func(f float64) bool { return math.IsInf(f, 1) },
		"+inf": func(f float64) bool { return math.IsInf(f, 1) },
		"-inf": func(f float64) bool { return math.IsInf(f, -1) },
		"nan":  math.IsNaN,
		"+nan": math.IsNaN,
		"-nan": math.IsNaN,
	}
	for src, check := range cases {
		v, _, err := parseValue(src, 0, defaultFloatParser)
		if err != nil {
			t.Fatalf("parseValue(%q): unexpected error: %v", src, err)
		}
		if !check(v.(float64)) {
			t.Errorf("parseValue(%q) = %v, failed check", src, v)
		}
	}
}

func TestCustomFloatParser(t *testing.T) {
	type tagged struct{ lexical string }
	parseFloat := func(lexical string) (any, error) {
		return tagged{lexical: lexical}, nil
	}
	v, _, err := parseValue("0.982492", 0, parseFloat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := v.(tagged)
	if !ok {
		t.Fatalf("got %T, want tagged", v)
	}
	if got.lexical != "0.982492" {
		t.Errorf("lexical = %q, want %q", got.lexical, "0.982492")
	}
}

func TestFloatParserForbiddenReturnType(t *testing.T) {
	parseFloat := func(lexical string) (any, error) {
		return newTable(), nil
	}
	_, _, err := parseValue("1.5", 0, parseFloat)
	if err == nil {
		t.Fatal("expected usage error, got none")
	}
	if err.Kind != KindUsage {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUsage)
	}
}
