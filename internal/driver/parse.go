package driver

import (
	"github.com/SteveSandersonMS/witx-bindgen/internal/ast"
	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/lexer"
	"github.com/SteveSandersonMS/witx-bindgen/internal/parser"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Profile *ast.Profile // nil when parsing failed
	Bag     *diag.Bag
}

// Parse loads and parses one profile file. A parse failure is not an error
// at this level: the diagnostic is in the bag and Profile stays nil.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	profile, bag := parseFile(file, maxDiagnostics)
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Profile: profile,
		Bag:     bag,
	}, nil
}

// ParseVirtual parses in-memory content under the given name.
func ParseVirtual(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	file := fs.Get(fileID)

	profile, bag := parseFile(file, maxDiagnostics)
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Profile: profile,
		Bag:     bag,
	}
}

func parseFile(file *source.File, maxDiagnostics int) (*ast.Profile, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	profile, ok := parser.ParseProfile(lx, parser.Options{Reporter: reporter})
	// speculative lookahead can report the same lexical error twice
	bag.Dedup()
	bag.Sort()
	if !ok {
		return nil, bag
	}
	return profile, bag
}
