package token_test

import (
	"testing"

	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		want  token.Kind
		ok    bool
	}{
		{"extend", token.KwExtend, true},
		{"provide", token.KwProvide, true},
		{"require", token.KwRequire, true},
		{"implement", token.KwImplement, true},
		{"with", token.KwWith, true},
		{"Extend", token.Invalid, false}, // case-sensitive
		{"extends", token.Invalid, false},
		{"", token.Invalid, false},
	}
	for _, tc := range cases {
		got, ok := token.LookupKeyword(tc.ident)
		if ok != tc.ok {
			t.Errorf("%q: ok = %v, want %v", tc.ident, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Errorf("%q: got %s, want %s", tc.ident, got, tc.want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !token.Whitespace.IsTrivia() || !token.Comment.IsTrivia() {
		t.Error("trivia kinds not recognized")
	}
	if token.Ident.IsTrivia() || token.EOF.IsTrivia() {
		t.Error("non-trivia kind reported as trivia")
	}
	if !token.KwWith.IsKeyword() || token.Ident.IsKeyword() {
		t.Error("IsKeyword wrong")
	}
	if !token.KwExtend.IsDeclKeyword() || token.KwWith.IsDeclKeyword() {
		t.Error("IsDeclKeyword wrong")
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want string
	}{
		{token.EOF, "end of input"},
		{token.KwExtend, "`extend`"},
		{token.KwWith, "`with`"},
		{token.Ident, "an identifier"},
		{token.StringLit, "a string"},
	}
	for _, tc := range cases {
		if got := tc.kind.Describe(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestTokenDescribe(t *testing.T) {
	tok := token.Token{Kind: token.Ident, Text: "fs"}
	if got := tok.Describe(); got != "`fs`" {
		t.Errorf("got %q", got)
	}
	eof := token.Token{Kind: token.EOF}
	if got := eof.Describe(); got != "end of input" {
		t.Errorf("got %q", got)
	}
}
