package parser

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/ast"
	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/lexer"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Parser holds the state for parsing a single profile file.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseProfile is the entry point for one file. Parsing is fail-fast: the
// first error aborts and no partial tree is returned. The single error is
// delivered through opts.Reporter.
func ParseProfile(lx *lexer.Lexer, opts Options) (*ast.Profile, bool) {
	p := Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	return p.parseProfile()
}

// parseProfile is the tree driver: while lookahead shows more input, collect
// docs and dispatch to the declaration parser picked by the peeked keyword.
func (p *Parser) parseProfile() (*ast.Profile, bool) {
	profile := &ast.Profile{Span: p.lx.EmptySpan()}

	for p.lx.Peek().Kind != token.EOF {
		docs := p.parseDocs()
		decl, ok := p.parseDecl(docs)
		if !ok {
			return nil, false
		}
		profile.Decls = append(profile.Decls, decl)
	}

	if len(profile.Decls) > 0 {
		first := profile.Decls[0].DeclSpan()
		last := profile.Decls[len(profile.Decls)-1].DeclSpan()
		profile.Span = first.Cover(last)
	}
	return profile, true
}

// parseDecl dispatches on the peeked keyword without consuming it; the
// chosen parser re-reads it as its leading token.
func (p *Parser) parseDecl(docs ast.Docs) (ast.Decl, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwExtend:
		return p.parseExtend()
	case token.KwProvide:
		return p.parseProvide(docs)
	case token.KwRequire:
		return p.parseRequire(docs)
	case token.KwImplement:
		return p.parseImplement(docs)
	case token.Invalid:
		// the lexer already reported the lexical error
		return nil, false
	default:
		p.errExpected(diag.SynExpectDeclaration,
			"`extend`, `provide`, `require`, or `implement`", tok)
		return nil, false
	}
}
