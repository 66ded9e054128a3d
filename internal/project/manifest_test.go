package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SteveSandersonMS/witx-bindgen/internal/project"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, project.ManifestName)
	writeFile(t, path, "[package]\nname = \"demo\"\n\n[profiles]\ndir = \"profiles\"\n")

	m, err := project.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
	if m.Root != dir {
		t.Errorf("root = %q", m.Root)
	}
	if m.Config.Profiles.Dir != "profiles" {
		t.Errorf("dir = %q", m.Config.Profiles.Dir)
	}
}

func TestLoadManifestRequiresName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, project.ManifestName)
	writeFile(t, path, "[profiles]\ndir = \"p\"\n")

	if _, err := project.Load(path); err == nil {
		t.Fatal("accepted a manifest without [package].name")
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, project.ManifestName)
	writeFile(t, path, "this is not toml [[[")

	if _, err := project.Load(path); err == nil {
		t.Fatal("accepted malformed TOML")
	}
}

func TestProfileFilesFromDirAndInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "profiles", "a.profile"), "provide a")
	writeFile(t, filepath.Join(dir, "profiles", "b.profile"), "provide b")
	writeFile(t, filepath.Join(dir, "extra.profile"), "provide c")
	writeFile(t, filepath.Join(dir, "profiles", "notes.txt"), "skip me")

	path := filepath.Join(dir, project.ManifestName)
	writeFile(t, path, "[package]\nname = \"demo\"\n\n[profiles]\ndir = \"profiles\"\ninclude = [\"extra.profile\"]\n")

	m, err := project.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	files, err := m.ProfileFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v", files)
	}
}

func TestProfileFilesDefaultsToRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "only.profile"), "provide x")
	path := filepath.Join(dir, project.ManifestName)
	writeFile(t, path, "[package]\nname = \"demo\"\n")

	m, err := project.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	files, err := m.ProfileFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "only.profile" {
		t.Fatalf("files = %v", files)
	}
}

func TestListProfileFilesSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.profile"), "")
	writeFile(t, filepath.Join(dir, "a.profile"), "")

	files, err := project.ListProfileFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.profile" {
		t.Fatalf("files = %v", files)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, project.ManifestName), "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, err := project.FindManifest(nested)
	if err != nil {
		t.Fatal(err)
	}
	resolved, _ := filepath.EvalSymlinks(found)
	expected, _ := filepath.EvalSymlinks(filepath.Join(root, project.ManifestName))
	if resolved != expected {
		t.Errorf("found %q, want %q", resolved, expected)
	}
}

func TestLoadNearest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, project.ManifestName), "[package]\nname = \"demo\"\n")

	m, err := project.LoadNearest(root)
	if err != nil {
		t.Fatal(err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
}
