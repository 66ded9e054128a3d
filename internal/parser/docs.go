package parser

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/ast"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

// parseDocs collects the contiguous run of comments preceding the next
// declaration, reading the raw token stream through a rewindable mark.
// The committed position moves forward after every trivia token consumed
// and is rewound before the first non-trivia token, so the declaration
// parser that runs next sees that token as its first input. Whitespace
// (blank lines included) never severs the run; it is skipped unrecorded.
func (p *Parser) parseDocs() ast.Docs {
	var docs ast.Docs
	m := p.lx.Mark()
	for {
		tok := p.lx.NextRaw()
		switch tok.Kind {
		case token.Whitespace:
			// skip
		case token.Comment:
			docs.Lines = append(docs.Lines, tok.Text)
		default:
			p.lx.Reset(m)
			return docs
		}
		m = p.lx.Mark()
	}
}
