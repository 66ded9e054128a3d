package parser

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/ast"
	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// parseImplement parses `implement "<interface>" with "<component>"`.
// Unlike the other declarations, both operands must be string literals;
// a bare identifier is rejected with a fix suggesting quotes.
func (p *Parser) parseImplement(docs ast.Docs) (*ast.Implement, bool) {
	kw, ok := p.expect(token.KwImplement)
	if !ok {
		return nil, false
	}
	iface, ok := p.expectString()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwWith); !ok {
		return nil, false
	}
	comp, ok := p.expectString()
	if !ok {
		return nil, false
	}

	span := kw.Span
	span.End = comp.Span.End

	return &ast.Implement{
		Docs:      docs,
		Span:      span,
		Interface: p.lx.DecodeString(iface.Span),
		Component: p.lx.DecodeString(comp.Span),
	}, true
}

// expectString consumes a string literal. A bare identifier in its place is
// a dedicated error carrying a quote-the-name fix.
func (p *Parser) expectString() (token.Token, bool) {
	if p.at(token.StringLit) {
		return p.advance(), true
	}
	found := p.lx.Peek()
	if found.Kind == token.Invalid {
		return token.Token{Kind: token.Invalid, Span: found.Span}, false
	}

	var fixes []diag.Fix
	if found.Kind == token.Ident {
		fixes = []diag.Fix{{
			Title: "quote the name",
			Edits: []diag.FixEdit{{Span: found.Span, NewText: `"` + found.Text + `"`}},
		}}
	}
	p.report(diag.SynExpectString, p.diagnosticSpan(found),
		"expected a string, found "+found.Describe(), fixes)
	return token.Token{Kind: token.Invalid, Span: found.Span}, false
}
