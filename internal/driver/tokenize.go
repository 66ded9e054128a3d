package driver

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/lexer"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes one profile file to EOF. With includeTrivia the raw stream
// (whitespace and comments as tokens) is returned; otherwise only the
// significant tokens the parser would see.
func Tokenize(path string, maxDiagnostics int, includeTrivia bool) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		var tok token.Token
		if includeTrivia {
			tok = lx.NextRaw()
		} else {
			tok = lx.Next()
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	bag.Dedup()
	bag.Sort()
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
