package lexer

import (
	"fmt"
	"strings"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// scanString scans a `"..."` literal, validating every escape sequence as it
// goes. Escapes are decoded later by DecodeString; here a bad escape or a
// missing closing quote downgrades the token to Invalid.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	bad := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			if bad {
				return lx.tokenFrom(token.Invalid, start)
			}
			return lx.tokenFrom(token.StringLit, start)
		}
		if b == '\\' {
			if !lx.scanEscape() {
				bad = true
			}
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return lx.tokenFrom(token.Invalid, start)
		}
		lx.cursor.Bump()
	}
	// EOF without a closing quote
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return lx.tokenFrom(token.Invalid, start)
}

// scanEscape consumes one escape sequence starting at '\' and reports it if
// malformed. Recognized: \\ \" \' \n \t \r \u{hex}.
func (lx *Lexer) scanEscape() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexInvalidEscape, sp, "incomplete escape sequence")
		return false
	}
	switch b := lx.cursor.Bump(); b {
	case '\\', '"', '\'', 'n', 't', 'r':
		return true
	case 'u':
		if !lx.cursor.Eat('{') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexInvalidEscape, sp, "expected `{` after `\\u`")
			return false
		}
		digits := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		if digits == 0 || !lx.cursor.Eat('}') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexInvalidEscape, sp, "malformed unicode escape")
			return false
		}
		return true
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexInvalidEscape, sp, fmt.Sprintf("invalid escape sequence %q", string(lx.file.Content[sp.Start:sp.End])))
		return false
	}
}

// DecodeString resolves escape sequences in the StringLit token at sp and
// returns the decoded text. The span must come from a StringLit produced by
// this lexer's file, so escapes are already validated.
func (lx *Lexer) DecodeString(sp source.Span) string {
	return DecodeString(lx.file, sp)
}

// DecodeString decodes the string literal at sp inside f.
func DecodeString(f *source.File, sp source.Span) string {
	raw := f.Content[sp.Start:sp.End]
	// strip the quotes
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}

	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(raw) {
			break
		}
		switch raw[i] {
		case '\\':
			b.WriteByte('\\')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case '\'':
			b.WriteByte('\'')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 'u':
			i++ // 'u'
			i++ // '{'
			var r rune
			for i < len(raw) && raw[i] != '}' {
				r = r<<4 | rune(hexVal(raw[i]))
				i++
			}
			if i < len(raw) {
				i++ // '}'
			}
			b.WriteRune(r)
		default:
			// scanString rejected everything else already
			b.WriteByte(raw[i])
			i++
		}
	}
	return b.String()
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
