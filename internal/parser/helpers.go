package parser

import (
	"fmt"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// at reports whether the next significant token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes the next significant token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagnosticSpan picks the best span for an error at the given token:
// the token itself, or for end of input the zero-length marker just past
// the last consumed token.
func (p *Parser) diagnosticSpan(found token.Token) source.Span {
	if found.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.After()
	}
	return found.Span
}

// expect consumes the next token if it has kind k; otherwise it reports
// "expected ..., found ..." and fails.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	found := p.lx.Peek()
	if found.Kind == token.Invalid {
		return token.Token{Kind: token.Invalid, Span: found.Span}, false
	}
	code := diag.SynExpectKeyword
	if k == token.StringLit {
		code = diag.SynExpectString
	}
	p.errExpected(code, k.Describe(), found)
	return token.Token{Kind: token.Invalid, Span: found.Span}, false
}

// errExpected emits the uniform "expected <what>, found <token-or-end>"
// diagnostic with the span of whatever was actually found.
func (p *Parser) errExpected(code diag.Code, what string, found token.Token) {
	p.report(code, p.diagnosticSpan(found),
		fmt.Sprintf("expected %s, found %s", what, found.Describe()), nil)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string, fixes []diag.Fix) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, fixes)
	}
}
