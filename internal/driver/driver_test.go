package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/driver"
	"github.com/SteveSandersonMS/witx-bindgen/internal/pipeline"
	"github.com/SteveSandersonMS/witx-bindgen/internal/token"
)

func writeProfile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseVirtual(t *testing.T) {
	res := driver.ParseVirtual("v.profile", []byte("extend base\nprovide fs"), 10)
	if res.Profile == nil {
		t.Fatal("parse failed")
	}
	if len(res.Profile.Decls) != 2 {
		t.Errorf("got %d decls", len(res.Profile.Decls))
	}
	if res.Bag.Len() != 0 {
		t.Errorf("bag = %v", res.Bag.Items())
	}
}

func TestParseVirtualFailure(t *testing.T) {
	res := driver.ParseVirtual("v.profile", []byte("provide"), 10)
	if res.Profile != nil {
		t.Fatal("expected failure")
	}
	d, ok := res.Bag.First()
	if !ok {
		t.Fatal("no diagnostic")
	}
	if d.Code != diag.SynExpectIdentifier {
		t.Errorf("code = %s", d.Code.ID())
	}
}

func TestParseFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "a.profile", `implement "x" with "y"`)

	res, err := driver.Parse(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Profile == nil || len(res.Profile.Implements()) != 1 {
		t.Fatalf("got %+v", res.Profile)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := driver.Parse(filepath.Join(t.TempDir(), "missing.profile"), 10)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestTokenizeFilteredAndRaw(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "a.profile", "extend base // trailing\n")

	filtered, err := driver.Tokenize(path, 10, false)
	if err != nil {
		t.Fatal(err)
	}
	// extend, base, EOF
	if len(filtered.Tokens) != 3 {
		t.Fatalf("filtered = %d tokens", len(filtered.Tokens))
	}

	raw, err := driver.Tokenize(path, 10, true)
	if err != nil {
		t.Fatal(err)
	}
	sawComment := false
	for _, tok := range raw.Tokens {
		if tok.Kind == token.Comment {
			sawComment = true
		}
	}
	if !sawComment {
		t.Error("raw stream lost the comment")
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeProfile(t, dir, "good.profile", "provide fs")
	bad := writeProfile(t, dir, "bad.profile", "provide")

	fs, results, err := driver.CheckFiles(context.Background(), []string{good, bad}, driver.CheckOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if fs == nil || len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Path != good || results[0].Bag.HasErrors() || results[0].Decls != 1 {
		t.Errorf("good: %+v", results[0])
	}
	if results[1].Path != bad || !results[1].Bag.HasErrors() {
		t.Errorf("bad: %+v", results[1])
	}
}

func TestCheckDirFindsProfiles(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "a.profile", "provide a")
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeProfile(t, sub, "b.profile", "provide b")
	writeProfile(t, dir, "ignored.txt", "not a profile")

	_, results, err := driver.CheckDir(context.Background(), dir, driver.CheckOptions{Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
}

// collectSink records progress events for assertions.
type collectSink struct {
	mu     sync.Mutex
	events []pipeline.Event
}

func (s *collectSink) OnEvent(ev pipeline.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestCheckEmitsProgress(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "a.profile", "provide fs")

	sink := &collectSink{}
	_, _, err := driver.CheckFiles(context.Background(), []string{path}, driver.CheckOptions{Progress: sink})
	if err != nil {
		t.Fatal(err)
	}

	var sawQueued, sawDone bool
	for _, ev := range sink.events {
		if ev.Status == pipeline.StatusQueued {
			sawQueued = true
		}
		if ev.Status == pipeline.StatusDone && ev.File == path {
			sawDone = true
		}
	}
	if !sawQueued || !sawDone {
		t.Errorf("events = %+v", sink.events)
	}
}

func TestCheckCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "a.profile", "provide fs")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := driver.CheckFiles(ctx, []string{path}, driver.CheckOptions{})
	if err == nil {
		t.Fatal("expected a context error")
	}
}

func TestCheckUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "a.profile", "provide fs\nrequire net")

	cache, err := driver.OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.CheckOptions{Cache: cache}

	_, first, err := driver.CheckFiles(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("first run reported a cache hit")
	}

	_, second, err := driver.CheckFiles(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatal("second run missed the cache")
	}
	if second[0].Decls != 2 {
		t.Errorf("cached decls = %d", second[0].Decls)
	}
}

func TestFailedParseNotCached(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "a.profile", "provide")

	cache, err := driver.OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.CheckOptions{Cache: cache}

	for run := 0; run < 2; run++ {
		_, results, err := driver.CheckFiles(context.Background(), []string{path}, opts)
		if err != nil {
			t.Fatal(err)
		}
		if results[0].Cached {
			t.Fatalf("run %d: failure served from cache", run)
		}
		if !results[0].Bag.HasErrors() {
			t.Fatalf("run %d: error lost", run)
		}
	}
}
