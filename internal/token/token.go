package token

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsIdent reports whether the token is a bare identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Describe renders the token for an "expected ..., found ..." message.
// Non-empty tokens are quoted verbatim; EOF and empty invalid tokens fall
// back to the kind's description.
func (t Token) Describe() string {
	if t.Kind == EOF || t.Text == "" {
		return t.Kind.Describe()
	}
	return "`" + t.Text + "`"
}
