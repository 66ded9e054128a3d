package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Whitespace covers runs of spaces, tabs and newlines (raw stream only).
	Whitespace
	// Comment is a `// ...` line comment or `/* ... */` block comment
	// (raw stream only).
	Comment

	// Ident represents a bare identifier token.
	Ident
	// StringLit represents a quoted string literal.
	StringLit

	// KwExtend represents the 'extend' keyword.
	KwExtend // extend
	// KwProvide represents the 'provide' keyword.
	KwProvide // provide
	// KwRequire represents the 'require' keyword.
	KwRequire // require
	// KwImplement represents the 'implement' keyword.
	KwImplement // implement
	// KwWith represents the 'with' keyword.
	KwWith // with
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Whitespace:
		return "Whitespace"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case StringLit:
		return "StringLit"
	case KwExtend:
		return "KwExtend"
	case KwProvide:
		return "KwProvide"
	case KwRequire:
		return "KwRequire"
	case KwImplement:
		return "KwImplement"
	case KwWith:
		return "KwWith"
	}
	return "Unknown"
}

// Describe renders the kind the way diagnostics quote it:
// keywords and punctuation in backticks, classes in prose.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of input"
	case Whitespace:
		return "whitespace"
	case Comment:
		return "a comment"
	case Ident:
		return "an identifier"
	case StringLit:
		return "a string"
	case KwExtend:
		return "`extend`"
	case KwProvide:
		return "`provide`"
	case KwRequire:
		return "`require`"
	case KwImplement:
		return "`implement`"
	case KwWith:
		return "`with`"
	}
	return "an invalid token"
}

// IsTrivia reports whether the kind only appears in the raw token stream.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// IsKeyword reports whether the token kind is a language keyword.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwExtend, KwProvide, KwRequire, KwImplement, KwWith:
		return true
	default:
		return false
	}
}

// IsDeclKeyword reports whether the kind can start a declaration.
func (k Kind) IsDeclKeyword() bool {
	switch k {
	case KwExtend, KwProvide, KwRequire, KwImplement:
		return true
	default:
		return false
	}
}
