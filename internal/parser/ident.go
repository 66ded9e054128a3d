package parser

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/ast"
	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// parseIdent consumes exactly one token: a bare identifier (name is the
// verbatim source slice) or a string literal (name is the decoded text).
func (p *Parser) parseIdent() (ast.Ident, bool) {
	tok := p.advance()
	switch tok.Kind {
	case token.Ident:
		return ast.Ident{Name: tok.Text, Span: tok.Span}, true
	case token.StringLit:
		return ast.Ident{
			Name:   p.lx.DecodeString(tok.Span),
			Span:   tok.Span,
			Quoted: true,
		}, true
	case token.Invalid:
		return ast.Ident{}, false
	default:
		p.errExpected(diag.SynExpectIdentifier, "an identifier or string", tok)
		return ast.Ident{}, false
	}
}
