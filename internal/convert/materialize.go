package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
)

// MarkdownPath returns htmlPath with its .html suffix replaced by .md.
func MarkdownPath(htmlPath string) string {
	return strings.TrimSuffix(htmlPath, htmlExt) + mdExt
}

// Materialize replaces the document at htmlPath with a .md sibling holding content.
//
// The content is staged in a hidden temporary file first; the original is then
// renamed to the .md path and the staged file renamed over it, so the .html and
// .md forms never exist side by side.
func Materialize(htmlPath string, content []byte) (string, error) {
	if !strings.HasSuffix(htmlPath, htmlExt) {
		return "", cerrors.FileSystem("materialize", htmlPath, ErrNotHTML)
	}
	mdPath := MarkdownPath(htmlPath)

	info, err := os.Stat(htmlPath)
	if err != nil {
		return "", cerrors.FileSystem("stat", htmlPath, err)
	}

	tmpName, err := stage(filepath.Dir(htmlPath), filepath.Base(mdPath), content, info.Mode().Perm())
	if err != nil {
		return "", err
	}

	if err := os.Rename(htmlPath, mdPath); err != nil {
		_ = os.Remove(tmpName)
		return "", cerrors.FileSystem("rename", htmlPath, err)
	}
	if err := os.Rename(tmpName, mdPath); err != nil {
		_ = os.Remove(tmpName)
		return "", cerrors.FileSystem("replace", mdPath, err)
	}

	return mdPath, nil
}

// stage writes content to a hidden temporary file in dir and returns its name.
func stage(dir, name string, content []byte, perm os.FileMode) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", cerrors.FileSystem("create", dir, err)
	}
	tmpName := tmp.Name()

	fail := func(op string, err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", cerrors.FileSystem(op, tmpName, err)
	}

	if _, err := tmp.Write(content); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", cerrors.FileSystem("close", tmpName, fmt.Errorf("closing staged file: %w", err))
	}

	return tmpName, nil
}
