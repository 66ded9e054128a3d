package ast

import "github.com/SteveSandersonMS/witx-bindgen/internal/source"

// Ident is a parsed name: either a bare identifier (Name is the verbatim
// source text) or a quoted string literal (Name is the decoded text and
// Quoted is set).
type Ident struct {
	Name   string
	Span   source.Span
	Quoted bool
}
