package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the toolchain looks for at the project root.
const ManifestName = "witx.toml"

// ProfileExt is the extension of profile source files.
const ProfileExt = ".profile"

// Manifest is the parsed witx.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML structure of witx.toml.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Profiles ProfilesConfig `toml:"profiles"`
}

// PackageConfig is the [package] section.
type PackageConfig struct {
	Name string `toml:"name"`
}

// ProfilesConfig is the [profiles] section: a directory to scan and/or an
// explicit include list, both relative to the manifest.
type ProfilesConfig struct {
	Dir     string   `toml:"dir"`
	Include []string `toml:"include"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// ProfileFiles resolves the manifest's profile set to a sorted list of
// paths. Without a [profiles] section, the project root is scanned.
func (m *Manifest) ProfileFiles() ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	dir := m.Config.Profiles.Dir
	if dir == "" && len(m.Config.Profiles.Include) == 0 {
		dir = "."
	}
	if dir != "" {
		found, err := ListProfileFiles(filepath.Join(m.Root, dir))
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	for _, inc := range m.Config.Profiles.Include {
		add(filepath.Join(m.Root, inc))
	}

	sort.Strings(files)
	return files, nil
}

// ListProfileFiles returns the sorted list of *.profile files under dir.
func ListProfileFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ProfileExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
