package convert

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
	"git.home.luguber.info/inful/html2md/internal/logfields"
)

const (
	htmlExt = ".html"
	mdExt   = ".md"
)

// Collect returns the absolute path of every *.html file below root in walk order.
func Collect(root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, cerrors.FileSystem("resolve", root, err)
	}

	var paths []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		if !strings.HasSuffix(d.Name(), htmlExt) {
			return nil
		}

		paths = append(paths, path)
		slog.Debug("Discovered file", logfields.Path(path))
		return nil
	})
	if err != nil {
		return nil, cerrors.FileSystem("walk", abs, fmt.Errorf("%w: %w", ErrWalkFailed, err))
	}

	return paths, nil
}
