package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoManifest is returned when no witx.toml exists up the directory tree.
var ErrNoManifest = errors.New("no witx.toml found")

// FindManifest walks from startDir upward looking for witx.toml.
func FindManifest(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNoManifest
}

// LoadNearest finds and parses the manifest governing startDir.
func LoadNearest(startDir string) (*Manifest, error) {
	path, err := FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}
