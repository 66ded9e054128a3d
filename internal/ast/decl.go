package ast

import "github.com/SteveSandersonMS/witx-bindgen/internal/source"

// DeclKind is the closed set of declaration kinds in a profile document.
type DeclKind uint8

const (
	DeclExtend DeclKind = iota
	DeclProvide
	DeclRequire
	DeclImplement
)

func (k DeclKind) String() string {
	switch k {
	case DeclExtend:
		return "extend"
	case DeclProvide:
		return "provide"
	case DeclRequire:
		return "require"
	case DeclImplement:
		return "implement"
	}
	return "unknown"
}

// Decl is one declaration in a profile. The concrete types are Extend,
// Provide, Require and Implement; nothing else implements it.
type Decl interface {
	Kind() DeclKind
	// DeclSpan covers the whole construct, from the leading keyword to the
	// last consumed token.
	DeclSpan() source.Span
	// DeclDocs returns the doc comments attached to the declaration.
	DeclDocs() Docs
}

// Extend declares that this profile extends another one.
// Extend statements carry no docs.
type Extend struct {
	Span    source.Span
	Profile Ident
}

func (*Extend) Kind() DeclKind          { return DeclExtend }
func (d *Extend) DeclSpan() source.Span { return d.Span }
func (*Extend) DeclDocs() Docs          { return Docs{} }

// Provide declares an interface this profile provides.
type Provide struct {
	Docs      Docs
	Span      source.Span
	Interface Ident
}

func (*Provide) Kind() DeclKind          { return DeclProvide }
func (d *Provide) DeclSpan() source.Span { return d.Span }
func (d *Provide) DeclDocs() Docs        { return d.Docs }

// Require declares an interface this profile requires.
type Require struct {
	Docs      Docs
	Span      source.Span
	Interface Ident
}

func (*Require) Kind() DeclKind          { return DeclRequire }
func (d *Require) DeclSpan() source.Span { return d.Span }
func (d *Require) DeclDocs() Docs        { return d.Docs }

// Implement binds an interface to a component implementation. Both operands
// must be string literals in source; they are stored decoded.
type Implement struct {
	Docs      Docs
	Span      source.Span
	Interface string
	Component string
}

func (*Implement) Kind() DeclKind          { return DeclImplement }
func (d *Implement) DeclSpan() source.Span { return d.Span }
func (d *Implement) DeclDocs() Docs        { return d.Docs }
