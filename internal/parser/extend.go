package parser

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/ast"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// parseExtend parses `extend <ident-or-string>`.
func (p *Parser) parseExtend() (*ast.Extend, bool) {
	kw, ok := p.expect(token.KwExtend)
	if !ok {
		return nil, false
	}
	profile, ok := p.parseIdent()
	if !ok {
		return nil, false
	}

	span := kw.Span
	span.End = profile.Span.End

	return &ast.Extend{Span: span, Profile: profile}, true
}
