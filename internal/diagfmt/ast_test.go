package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diagfmt"
	"github.com/SteveSandersonMS/witx-bindgen/internal/driver"
	"github.com/SteveSandersonMS/witx-bindgen/internal/lexer"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

const demoProfile = `// filesystem access
provide fs
extend "base"
implement "wasi:clocks" with "clock-impl"
`

func TestFormatProfilePretty(t *testing.T) {
	res := driver.ParseVirtual("demo.profile", []byte(demoProfile), 10)
	if res.Profile == nil {
		t.Fatal("parse failed")
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatProfilePretty(&buf, res.Profile, res.FileSet); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"profile (3 declarations)",
		`doc "// filesystem access"`,
		"provide fs at 2:1",
		`extend "base" at 3:1`,
		`implement "wasi:clocks" with "clock-impl" at 4:1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatProfileJSON(t *testing.T) {
	res := driver.ParseVirtual("demo.profile", []byte(demoProfile), 10)
	if res.Profile == nil {
		t.Fatal("parse failed")
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatProfileJSON(&buf, res.Profile); err != nil {
		t.Fatal(err)
	}

	var out diagfmt.ProfileJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Decls) != 3 {
		t.Fatalf("got %d decls", len(out.Decls))
	}
	if out.Decls[0].Kind != "provide" || out.Decls[0].Name != "fs" {
		t.Errorf("decl 0 = %+v", out.Decls[0])
	}
	if len(out.Decls[0].Docs) != 1 {
		t.Errorf("decl 0 docs = %v", out.Decls[0].Docs)
	}
	if !out.Decls[1].Quoted || out.Decls[1].Name != "base" {
		t.Errorf("decl 1 = %+v", out.Decls[1])
	}
	if out.Decls[2].Interface != "wasi:clocks" || out.Decls[2].Component != "clock-impl" {
		t.Errorf("decl 2 = %+v", out.Decls[2])
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.profile", []byte("extend base"))
	lx := lexer.New(fs.Get(id), lexer.Options{})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "KwExtend") || !strings.Contains(out, `"base"`) {
		t.Errorf("token dump wrong:\n%s", out)
	}
	if !strings.Contains(out, "at 1:8-1:12") {
		t.Errorf("position wrong:\n%s", out)
	}
}
