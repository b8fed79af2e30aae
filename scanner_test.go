package toml

import "testing"

func TestSkipInlineWhitespace(t *testing.T) {
	src := "  \tabc"
	if got := skipInlineWhitespace(src, 0); got != 3 {
		t.Errorf("skipInlineWhitespace() = %d, want 3", got)
	}
}

func TestSkipComment(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantPos int
		wantErr bool
	}{
		{"to newline", "# hello\nrest", 7, false},
		{"to eof", "# hello", 7, false},
		{"not a comment", "abc", 0, false},
		{"control char", "# bad\x01", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := skipComment(tc.src, 0)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if err == nil && pos != tc.wantPos {
				t.Errorf("pos = %d, want %d", pos, tc.wantPos)
			}
		})
	}
}

func TestSkipCommentsAndArrayWS(t *testing.T) {
	src := "  \n # comment\n  42"
	pos, err := skipCommentsAndArrayWS(src, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src[pos:] != "42" {
		t.Errorf("remainder = %q, want %q", src[pos:], "42")
	}
}

func TestIsBareKeyByte(t *testing.T) {
	for _, c := range []byte("abcXYZ019_-") {
		if !isBareKeyByte(c) {
			t.Errorf("isBareKeyByte(%q) = false, want true", c)
		}
	}
	for _, c := range []byte(" .=\"'[]{}") {
		if isBareKeyByte(c) {
			t.Errorf("isBareKeyByte(%q) = true, want false", c)
		}
	}
}
