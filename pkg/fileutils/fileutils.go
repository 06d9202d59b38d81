package fileutils

import (
	"os"
	"path/filepath"

	"github.com/LambdaTest/coveralls-reporter/pkg/global"
)

// CheckIfExists checks if file or directory exists in the given path.
func CheckIfExists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsRegularFile reports whether path exists and is a regular file. Symlinks are
// followed.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// CreateIfNotExists creates a file or a directory only if it does not already exist.
func CreateIfNotExists(path string, isDir bool) error {
	exists, err := CheckIfExists(path)
	if err != nil {
		return err
	}
	if !exists {
		if isDir {
			return os.MkdirAll(path, global.DirectoryPermissions)
		}
		if err := os.MkdirAll(filepath.Dir(path), global.DirectoryPermissions); err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE, global.FilePermissions)
		if err != nil {
			return err
		}
		f.Close()
	}

	return nil
}
