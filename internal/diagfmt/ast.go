package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SteveSandersonMS/witx-bindgen/internal/ast"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
)

// FormatProfilePretty writes a readable dump of the parsed profile.
func FormatProfilePretty(w io.Writer, profile *ast.Profile, fs *source.FileSet) error {
	fmt.Fprintf(w, "profile (%d declarations)\n", len(profile.Decls))
	for _, d := range profile.Decls {
		start, _ := fs.Resolve(d.DeclSpan())
		for _, line := range d.DeclDocs().Lines {
			fmt.Fprintf(w, "  doc %q\n", line)
		}
		switch decl := d.(type) {
		case *ast.Extend:
			fmt.Fprintf(w, "  extend %s at %d:%d\n", identString(decl.Profile), start.Line, start.Col)
		case *ast.Provide:
			fmt.Fprintf(w, "  provide %s at %d:%d\n", identString(decl.Interface), start.Line, start.Col)
		case *ast.Require:
			fmt.Fprintf(w, "  require %s at %d:%d\n", identString(decl.Interface), start.Line, start.Col)
		case *ast.Implement:
			fmt.Fprintf(w, "  implement %q with %q at %d:%d\n", decl.Interface, decl.Component, start.Line, start.Col)
		}
	}
	return nil
}

func identString(id ast.Ident) string {
	if id.Quoted {
		return fmt.Sprintf("%q", id.Name)
	}
	return id.Name
}

// DeclJSON is one declaration rendered for JSON output.
type DeclJSON struct {
	Kind      string      `json:"kind"`
	Span      source.Span `json:"span"`
	Docs      []string    `json:"docs,omitempty"`
	Name      string      `json:"name,omitempty"`
	Quoted    bool        `json:"quoted,omitempty"`
	Interface string      `json:"interface,omitempty"`
	Component string      `json:"component,omitempty"`
}

// ProfileJSON is the root JSON structure of an AST dump.
type ProfileJSON struct {
	Span  source.Span `json:"span"`
	Decls []DeclJSON  `json:"decls"`
}

// FormatProfileJSON writes the parsed profile as JSON.
func FormatProfileJSON(w io.Writer, profile *ast.Profile) error {
	out := ProfileJSON{
		Span:  profile.Span,
		Decls: make([]DeclJSON, 0, len(profile.Decls)),
	}
	for _, d := range profile.Decls {
		dj := DeclJSON{
			Kind: d.Kind().String(),
			Span: d.DeclSpan(),
			Docs: d.DeclDocs().Lines,
		}
		switch decl := d.(type) {
		case *ast.Extend:
			dj.Name = decl.Profile.Name
			dj.Quoted = decl.Profile.Quoted
		case *ast.Provide:
			dj.Name = decl.Interface.Name
			dj.Quoted = decl.Interface.Quoted
		case *ast.Require:
			dj.Name = decl.Interface.Name
			dj.Quoted = decl.Interface.Quoted
		case *ast.Implement:
			dj.Interface = decl.Interface
			dj.Component = decl.Component
		}
		out.Decls = append(out.Decls, dj)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
