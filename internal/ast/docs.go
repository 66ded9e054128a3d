package ast

// Docs is the ordered run of comment lines immediately preceding a
// declaration. Lines keep their comment markers; blank lines between
// comments do not sever the run, only a non-comment token does.
type Docs struct {
	Lines []string
}

// IsEmpty reports whether no docs are attached.
func (d Docs) IsEmpty() bool { return len(d.Lines) == 0 }
