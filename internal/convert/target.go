package convert

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
)

// ResolveTarget picks the directory to operate on.
//
// A positional argument naming an existing directory wins, then the --dir
// value, then cwd. Relative values resolve against cwd. The result must be a
// readable directory; otherwise an InvalidTarget error naming the path is returned.
func ResolveTarget(cwd, positional, dirFlag string) (string, error) {
	choice := ""
	switch {
	case positional != "" && isDir(resolveAgainst(cwd, positional)):
		choice = positional
	case dirFlag != "":
		choice = dirFlag
	default:
		// an unusable positional argument is still reported rather than ignored
		choice = positional
	}

	target := cwd
	if choice != "" {
		target = resolveAgainst(cwd, choice)
	}

	if err := checkReadableDir(target); err != nil {
		return "", cerrors.InvalidTarget(target, err)
	}
	return target, nil
}

func resolveAgainst(cwd, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

var errNotDirectory = errors.New("not a directory")

func checkReadableDir(p string) error {
	info, err := os.Stat(p)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errNotDirectory
	}

	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
