package toml

import (
	"reflect"
	"testing"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{"bare", "abc", []string{"abc"}},
		{"dotted", "a.b.c", []string{"a", "b", "c"}},
		{"dotted with space", "a . b", []string{"a", "b"}},
		{"quoted part", `a."b.c".d`, []string{"a", "b.c", "d"}},
		{"literal part", `a.'b c'`, []string{"a", "b c"}},
		{"numeric bare key", "1234", []string{"1234"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := parseKey(tc.src, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseKey(%q) = %v, want %v", tc.src, got, tc.want)
			}
		})
	}
}

func TestParseKeyErrors(t *testing.T) {
	cases := []string{"", ".", "a.", `"unterminated`}
	for _, src := range cases {
		if _, _, err := parseKey(src, 0); err == nil {
			t.Errorf("parseKey(%q): expected error, got none", src)
		}
	}
}

func TestJoinKey(t *testing.T) {
	if got := joinKey([]string{"a", "b", "c"}); got != "a.b.c" {
		t.Errorf("joinKey() = %q, want %q", got, "a.b.c")
	}
}
