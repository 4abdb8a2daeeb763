// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jtok/internal/escape"
	"go4.org/mem"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, false},
		{`ok go`, "ok go", false},
		{`abc\ndef`, "abc\ndef", false},
		{`\b\f\n\r\t`, "\b\f\n\r\t", false},
		{`a \u0026 b`, "a & b", false},
		{`\u00e9t\u00e9`, "\u00e9t\u00e9", false},
		{`\u`, ``, true},
		{`\u00`, ``, true},
		{`abc\`, ``, true},
		{`\u00x9`, "\ufffd", false},
		{`\q`, "\ufffd", false},
		{`a\"b`, `a"b`, false},
		{`a\\b\/cd`, `a\b/cd`, false},

		// Surrogate pairs combine; unpaired surrogates are replaced.
		{`\ud83d\ude00!`, "\xf0\x9f\x98\x80!", false},
		{`\uD83D\uDE00`, "\xf0\x9f\x98\x80", false},
		{`\ud83dx`, "\xef\xbf\xbdx", false},
		{`\ud83d\u0041`, "\xef\xbf\xbdA", false},
		{`\ude00\ud83d`, "\xef\xbf\xbd\xef\xbf\xbd", false},
		{`\ud83d\ude0`, ``, true},
	}
	for _, tc := range tests {
		got, err := escape.Unquote(mem.S(tc.input))
		if err != nil {
			if !tc.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", tc.input, err)
			}
		} else if tc.fail {
			t.Errorf("Unquote(%#q): got %#q, want error", tc.input, got)
		}
		if s := string(got); s != tc.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", tc.input, s, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		raw, plain string
		want       bool
	}{
		{``, ``, true},
		{`abc`, `abc`, true},
		{`abc`, `abd`, false},
		{`abc`, `ab`, false},
		{`a\tb`, "a\tb", true},
		{`a\tb`, `a\tb`, false},
		{`\u0041BC`, "ABC", true},
		{`\u00e9`, "\u00e9", true},
		{`\u00e9`, "e", false},
		{`x\"`, `x"`, true},
		{`x\"`, `x"y`, false},
		{`x\u00`, `x`, false},
		{`a\ud83d\ude00`, "a\xf0\x9f\x98\x80", true},
		{`\ud83d\ude00`, "\xef\xbf\xbd\xef\xbf\xbd", false},
		{`\ud83d`, "\xef\xbf\xbd", true},
	}
	for _, tc := range tests {
		if got := escape.Equal(mem.S(tc.raw), tc.plain); got != tc.want {
			t.Errorf("Equal(%#q, %#q): got %v, want %v", tc.raw, tc.plain, got, tc.want)
		}
	}
}

func TestAppendQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"h\u00e9llo", "\"h\u00e9llo\""},
	}
	for _, tc := range tests {
		got := string(escape.AppendQuote([]byte("x:"), mem.S(tc.input)))
		if want := "x:" + tc.want; got != want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", tc.input, got, want)
		}
	}
}
