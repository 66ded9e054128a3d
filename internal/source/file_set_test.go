package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
)

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.profile", []byte("one\ntwo\nthree"))

	cases := []struct {
		off  uint32
		want source.LineCol
	}{
		{0, source.LineCol{Line: 1, Col: 1}},
		{2, source.LineCol{Line: 1, Col: 3}},
		{3, source.LineCol{Line: 1, Col: 4}}, // the newline itself
		{4, source.LineCol{Line: 2, Col: 1}},
		{8, source.LineCol{Line: 3, Col: 1}},
		{12, source.LineCol{Line: 3, Col: 5}},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(source.Span{File: id, Start: tc.off, End: tc.off})
		if start != tc.want {
			t.Errorf("off %d: got %v, want %v", tc.off, start, tc.want)
		}
	}
}

func TestResolveSingleLineFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.profile", []byte("abc"))

	start, end := fs.Resolve(source.Span{File: id, Start: 1, End: 3})
	if start != (source.LineCol{Line: 1, Col: 2}) || end != (source.LineCol{Line: 1, Col: 4}) {
		t.Errorf("got %v %v", start, end)
	}
}

func TestSliceRoundTrips(t *testing.T) {
	content := "extend base\nprovide x"
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.profile", []byte(content))

	sp := source.Span{File: id, Start: 7, End: 11}
	if got := fs.Slice(sp); got != "base" {
		t.Errorf("Slice = %q", got)
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.profile", []byte("first\nsecond\nlast"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "last"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.line); got != tc.want {
			t.Errorf("line %d: got %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.profile")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("extend a\r\nprovide b\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)

	if string(f.Content) != "extend a\nprovide b\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("BOM flag not set")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("CRLF flag not set")
	}
}

func TestGetByPath(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("some/dir/x.profile", []byte("provide x"))

	f, ok := fs.GetByPath("some/dir/x.profile")
	if !ok || f.Path != "some/dir/x.profile" {
		t.Fatalf("got %v %v", f, ok)
	}
	if _, ok := fs.GetByPath("missing.profile"); ok {
		t.Error("found a file that was never added")
	}
}

func TestDistinctHashes(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a", []byte("provide x")))
	b := fs.Get(fs.AddVirtual("b", []byte("provide y")))
	c := fs.Get(fs.AddVirtual("c", []byte("provide x")))

	if a.Hash == b.Hash {
		t.Error("different content, same hash")
	}
	if a.Hash != c.Hash {
		t.Error("same content, different hash")
	}
}
