package parser

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/ast"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// parseProvide parses `provide <ident-or-string>`. Docs were collected by
// the driver before dispatch and are attached verbatim.
func (p *Parser) parseProvide(docs ast.Docs) (*ast.Provide, bool) {
	kw, ok := p.expect(token.KwProvide)
	if !ok {
		return nil, false
	}
	iface, ok := p.parseIdent()
	if !ok {
		return nil, false
	}

	span := kw.Span
	span.End = iface.Span.End

	return &ast.Provide{Docs: docs, Span: span, Interface: iface}, true
}
