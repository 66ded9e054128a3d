package lexer

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// Lexer turns a profile file into tokens on demand. It keeps no lookahead
// buffer: peeking is mark-and-rewind over the cursor, so a failed
// speculative read never leaves visible state behind.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NextRaw returns the next token including Whitespace and Comment.
// After EOF it always returns EOF.
func (lx *Lexer) NextRaw() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	b := lx.cursor.Peek()
	switch {
	case b == ' ' || b == '\t' || b == '\n' || b == '\r':
		return lx.scanWhitespace()

	case b == '/' && lx.isCommentStart():
		return lx.scanComment()

	case b == '"':
		return lx.scanString()

	case isIdentStartByte(b) || b >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	default:
		return lx.scanUnknown()
	}
}

// Next returns the next significant token, skipping whitespace and comments.
// All syntax-level parsing goes through this variant.
func (lx *Lexer) Next() token.Token {
	for {
		tok := lx.NextRaw()
		if !tok.Kind.IsTrivia() {
			return tok
		}
	}
}

// Peek returns the next significant token without consuming it.
func (lx *Lexer) Peek() token.Token {
	m := lx.Mark()
	tok := lx.Next()
	lx.Reset(m)
	return tok
}

// PeekRaw returns the next raw token without consuming it.
func (lx *Lexer) PeekRaw() token.Token {
	m := lx.Mark()
	tok := lx.NextRaw()
	lx.Reset(m)
	return tok
}

// Mark saves the committed position; Reset rewinds to it.
func (lx *Lexer) Mark() Mark { return lx.cursor.Mark() }

// Reset rewinds the committed position to a previous mark.
func (lx *Lexer) Reset(m Mark) { lx.cursor.Reset(m) }

// File returns the file this lexer reads from.
func (lx *Lexer) File() *source.File { return lx.file }

// EmptySpan is the zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) tokenFrom(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) isCommentStart() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && (b1 == '/' || b1 == '*')
}
