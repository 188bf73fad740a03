// Package fsassert provides chainable assertions over a converted documentation tree.
package fsassert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Tree asserts on files below a base directory. Paths are slash separated and relative.
type Tree struct {
	t       *testing.T
	baseDir string
}

// New creates a tree assertion helper rooted at baseDir.
func New(t *testing.T, baseDir string) *Tree {
	return &Tree{t: t, baseDir: baseDir}
}

func (tr *Tree) path(rel string) string {
	return filepath.Join(tr.baseDir, filepath.FromSlash(rel))
}

// Exists validates that a file exists.
func (tr *Tree) Exists(rel string) *Tree {
	tr.t.Helper()
	if _, err := os.Stat(tr.path(rel)); err != nil {
		tr.t.Errorf("Expected file to exist: %s (%v)", rel, err)
	}
	return tr
}

// Missing validates that nothing exists at rel.
func (tr *Tree) Missing(rel string) *Tree {
	tr.t.Helper()
	if _, err := os.Stat(tr.path(rel)); !os.IsNotExist(err) {
		tr.t.Errorf("Expected %s to be absent", rel)
	}
	return tr
}

// Content validates that a file holds exactly want.
func (tr *Tree) Content(rel, want string) *Tree {
	tr.t.Helper()
	// #nosec G304 - test helper, paths are controlled by test code
	data, err := os.ReadFile(tr.path(rel))
	if err != nil {
		tr.t.Errorf("Failed to read file %s: %v", rel, err)
		return tr
	}
	if string(data) != want {
		tr.t.Errorf("Unexpected content in %s\nwant: %q\ngot:  %q", rel, want, string(data))
	}
	return tr
}

// NoHTML validates that no *.html file remains anywhere below the base directory.
func (tr *Tree) NoHTML() *Tree {
	tr.t.Helper()
	err := filepath.WalkDir(tr.baseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".html") {
			tr.t.Errorf("Unexpected HTML file left behind: %s", path)
		}
		return nil
	})
	if err != nil {
		tr.t.Errorf("Failed to walk %s: %v", tr.baseDir, err)
	}
	return tr
}
