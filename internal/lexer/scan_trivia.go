package lexer

import (
	"fmt"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// scanWhitespace coalesces a run of spaces, tabs, newlines and carriage
// returns into a single Whitespace token.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(token.Whitespace, start)
}

// scanComment scans `// ...` to end of line, or `/* ... */` with nesting.
// An unterminated block comment is reported and cut at EOF.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.Eat('/') {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return lx.tokenFrom(token.Comment, start)
	}

	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '/' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	if depth > 0 {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		return lx.tokenFrom(token.Invalid, start)
	}
	return lx.tokenFrom(token.Comment, start)
}

// scanUnknown consumes one rune nobody else claimed and reports it.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unrecognized character %q", string(lx.file.Content[sp.Start:sp.End])))
	return lx.tokenFrom(token.Invalid, start)
}
