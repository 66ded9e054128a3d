package ast

import "github.com/SteveSandersonMS/witx-bindgen/internal/source"

// Profile is the parsed form of one profile document. Decls are in source
// order and exclusively owned; nothing is shared or mutated after parsing.
type Profile struct {
	Span  source.Span
	Decls []Decl
}

// Extends returns every extend declaration, in source order.
func (p *Profile) Extends() []*Extend {
	var out []*Extend
	for _, d := range p.Decls {
		if e, ok := d.(*Extend); ok {
			out = append(out, e)
		}
	}
	return out
}

// Provides returns every provide declaration, in source order.
func (p *Profile) Provides() []*Provide {
	var out []*Provide
	for _, d := range p.Decls {
		if pr, ok := d.(*Provide); ok {
			out = append(out, pr)
		}
	}
	return out
}

// Requires returns every require declaration, in source order.
func (p *Profile) Requires() []*Require {
	var out []*Require
	for _, d := range p.Decls {
		if r, ok := d.(*Require); ok {
			out = append(out, r)
		}
	}
	return out
}

// Implements returns every implement declaration, in source order.
func (p *Profile) Implements() []*Implement {
	var out []*Implement
	for _, d := range p.Decls {
		if im, ok := d.(*Implement); ok {
			out = append(out, im)
		}
	}
	return out
}
