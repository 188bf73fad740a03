package convert

import (
	"log/slog"
	"os"
	"path/filepath"

	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
	"git.home.luguber.info/inful/html2md/internal/logfields"
)

// Organize moves a classified document into <base>/<type>/ and returns its new
// path and type tag. Unclassified documents are returned unchanged with an empty tag.
func Organize(path, base string, c *Classifier) (string, string, error) {
	name := filepath.Base(path)
	m, ok := c.Classify(name)
	if !ok {
		return path, "", nil
	}

	dir := filepath.Join(base, m.Type)
	// #nosec G301 -- documentation directories are public content
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", cerrors.FileSystem("mkdir", dir, err)
	}

	newPath := filepath.Join(dir, name)
	if newPath == filepath.Clean(path) {
		return newPath, m.Type, nil
	}

	if existing, err := os.Stat(newPath); err == nil {
		if src, serr := os.Stat(path); serr != nil || !os.SameFile(src, existing) {
			return "", "", cerrors.FileSystem("move", path, ErrDestinationExists).
				WithContext("destination", newPath)
		}
	}

	if err := os.Rename(path, newPath); err != nil {
		return "", "", cerrors.FileSystem("move", path, err)
	}
	slog.Debug("Organized file", logfields.Path(newPath), logfields.Type(m.Type))

	return newPath, m.Type, nil
}
