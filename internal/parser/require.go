package parser

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/ast"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// parseRequire parses `require <ident-or-string>`; same shape as provide,
// distinct tag.
func (p *Parser) parseRequire(docs ast.Docs) (*ast.Require, bool) {
	kw, ok := p.expect(token.KwRequire)
	if !ok {
		return nil, false
	}
	iface, ok := p.parseIdent()
	if !ok {
		return nil, false
	}

	span := kw.Span
	span.End = iface.Span.End

	return &ast.Require{Docs: docs, Span: span, Interface: iface}, true
}
