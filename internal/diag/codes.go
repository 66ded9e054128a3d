package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for uncategorized failures.
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexInvalidEscape            Code = 1004

	// Syntactic
	SynExpectDeclaration Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectString      Code = 2003
	SynExpectKeyword     Code = 2004

	// Driver / IO
	IOReadFailed   Code = 4001
	IONoProfiles   Code = 4002
	PrjBadManifest Code = 5001
	PrjNoManifest  Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexUnknownChar:              "unrecognized character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexInvalidEscape:            "invalid escape sequence",

	SynExpectDeclaration: "expected a declaration",
	SynExpectIdentifier:  "expected an identifier or string",
	SynExpectString:      "expected a string literal",
	SynExpectKeyword:     "expected a keyword",

	IOReadFailed:   "failed to read source file",
	IONoProfiles:   "no profile files found",
	PrjBadManifest: "malformed witx.toml manifest",
	PrjNoManifest:  "no witx.toml manifest found",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
