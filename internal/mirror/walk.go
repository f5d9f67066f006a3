package mirror

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// visitFunc receives one source directory and the names of the non-directory
// entries directly inside it. Symlinks to directories are neither: they are
// not descended into and are never used as match keys.
type visitFunc func(dir string, fileNames []string) error

// walkSource traverses root depth-first, root included. A directory's files are
// handed to visit before any of its subdirectories are listed, and
// subdirectories are entered in lexical order.
func walkSource(ctx context.Context, dir string, visit visitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Wrap(ErrSource, "read source directory", dir, err)
	}

	var fileNames, subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil && info.IsDir() {
				continue
			}
		}
		fileNames = append(fileNames, entry.Name())
	}

	if err := visit(dir, fileNames); err != nil {
		return err
	}
	for _, name := range subdirs {
		if err := walkSource(ctx, filepath.Join(dir, name), visit); err != nil {
			return err
		}
	}
	return nil
}

// findMatch walks the whole destination tree in lexical order and returns the
// path of the first regular file whose key equals want, or "" when none does.
func findMatch(root, want string, key matchKey) (string, error) {
	var match string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if key(BaseName(d.Name())) == want {
			match = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.SkipAll) {
		return "", Wrap(ErrDestination, "search destination", root, err)
	}
	return match, nil
}
