package unslpk

import (
	"os"
	"path/filepath"
	"strings"
)

// outputFolder derives the directory a package extracts into: the package
// path with its extension removed. A directory already at that path is
// deleted so repeated extractions start clean; a regular file is never
// clobbered. The folder exists and is empty on return.
func outputFolder(archivePath string) (string, error) {
	ext := filepath.Ext(archivePath)
	if ext == "" || strings.TrimSuffix(filepath.Base(archivePath), ext) == "" {
		// Without an extension the folder name would collide with the
		// package file itself.
		return "", ErrNoExtension
	}

	path := strings.TrimSuffix(archivePath, ext)

	fi, err := os.Lstat(path)
	switch {
	case os.IsNotExist(err):

	case err != nil:
		return "", err

	case fi.IsDir():
		if err := os.RemoveAll(path); err != nil {
			return "", err
		}

	default:
		return "", ErrOutputIsFile
	}

	if err := os.Mkdir(path, 0777); err != nil {
		return "", err
	}

	return path, nil
}
