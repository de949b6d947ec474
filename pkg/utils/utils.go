// Package utils holds the small filesystem helpers shared by the tile cache
// and the CLI output paths.
package utils

import "os"

// CreateFolder makes path and any missing parents. An existing path is not
// an error.
func CreateFolder(path string) error {
	exists, err := PathExists(path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return os.MkdirAll(path, os.ModeDir|os.ModePerm)
}

// PathExists reports whether the file or directory exists.
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return true, err
}
