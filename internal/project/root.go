// Package project resolves the kattis-util checkout that an invocation
// operates on. The checkout root is identified by a sentinel marker file
// (kattis.cfg by default); its presence is the precondition for every
// bootstrap operation.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMarkerNotFound is returned when no directory between the starting
// point and the filesystem root contains the sentinel marker.
var ErrMarkerNotFound = errors.New("project marker not found")

// Layout holds the resolved absolute paths of a checkout. It is computed
// once per operation and passed explicitly to every step; nothing in this
// repository changes the process working directory.
type Layout struct {
	Root      string
	Marker    string
	Manifest  string
	EnvDir    string
	Submodule string
}

// FindRoot walks upward from start until it finds a directory containing
// marker. Only the marker's presence matters; its content is ignored.
func FindRoot(start, marker string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve starting directory %s: %w", start, err)
	}

	for {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && !info.IsDir() {
			return dir, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("check marker %s in %s: %w", marker, dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrMarkerNotFound, marker, start)
		}
		dir = parent
	}
}

// Resolve locates the checkout root from start and lays out the paths the
// bootstrap manager operates on.
func Resolve(start, marker, envDir, manifest, submodule string) (Layout, error) {
	root, err := FindRoot(start, marker)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Root:      root,
		Marker:    filepath.Join(root, marker),
		Manifest:  filepath.Join(root, manifest),
		EnvDir:    filepath.Join(root, envDir),
		Submodule: filepath.Join(root, submodule),
	}, nil
}
