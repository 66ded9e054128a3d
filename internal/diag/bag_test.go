package diag_test

import (
	"testing"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
)

func errAt(code diag.Code, start, end uint32) diag.Diagnostic {
	return diag.NewError(code, source.Span{Start: start, End: end}, "x")
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(errAt(diag.SynExpectString, 0, 1)) {
		t.Fatal("first add rejected")
	}
	if !bag.Add(errAt(diag.SynExpectString, 1, 2)) {
		t.Fatal("second add rejected")
	}
	if bag.Add(errAt(diag.SynExpectString, 2, 3)) {
		t.Fatal("add past limit accepted")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := diag.NewBag(8)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag reports diagnostics")
	}
	bag.Add(diag.New(diag.SevWarning, diag.IONoProfiles, source.Span{}, "w"))
	if bag.HasErrors() {
		t.Error("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Error("warning not counted")
	}
	bag.Add(errAt(diag.SynExpectKeyword, 0, 1))
	if !bag.HasErrors() {
		t.Error("error not counted")
	}
}

func TestBagFirst(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.New(diag.SevWarning, diag.IONoProfiles, source.Span{}, "w"))
	bag.Add(errAt(diag.SynExpectString, 5, 6))

	d, ok := bag.First()
	if !ok {
		t.Fatal("no first error")
	}
	if d.Code != diag.SynExpectString {
		t.Errorf("First skipped to %s", d.Code.ID())
	}
}

func TestBagSortByPosition(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(errAt(diag.SynExpectString, 10, 12))
	bag.Add(errAt(diag.LexUnknownChar, 0, 1))
	bag.Add(errAt(diag.SynExpectKeyword, 5, 6))
	bag.Sort()

	starts := []uint32{0, 5, 10}
	for i, d := range bag.Items() {
		if d.Primary.Start != starts[i] {
			t.Errorf("item %d at %d, want %d", i, d.Primary.Start, starts[i])
		}
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(errAt(diag.LexUnknownChar, 0, 1))
	bag.Add(errAt(diag.LexUnknownChar, 0, 1)) // speculative re-scan duplicate
	bag.Add(errAt(diag.LexUnknownChar, 2, 3))
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("Len after dedup = %d", bag.Len())
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(errAt(diag.SynExpectString, 0, 1))

	b := diag.NewBag(2)
	b.Add(errAt(diag.SynExpectKeyword, 1, 2))
	b.Add(errAt(diag.SynExpectIdentifier, 2, 3))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("Len after merge = %d", a.Len())
	}
}

func TestBuilders(t *testing.T) {
	d := diag.NewError(diag.SynExpectString, source.Span{Start: 1, End: 2}, "boom").
		WithNote(source.Span{Start: 0, End: 1}, "context").
		WithFix("quote it", diag.FixEdit{Span: source.Span{Start: 1, End: 2}, NewText: `"x"`})

	if d.Severity != diag.SevError {
		t.Errorf("severity = %v", d.Severity)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "context" {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Title != "quote it" {
		t.Errorf("fixes = %+v", d.Fixes)
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code diag.Code
		want string
	}{
		{diag.LexUnknownChar, "LEX1001"},
		{diag.SynExpectDeclaration, "SYN2001"},
		{diag.IOReadFailed, "IO4001"},
		{diag.PrjBadManifest, "PRJ5001"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
