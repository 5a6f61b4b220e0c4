// Package filex contains file-system helpers for the Uploads/Downloads
// directory convention.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/transferbench/internal/common"
)

// EnsureDir creates dir (relative paths are resolved against the working
// directory) if it does not exist yet and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// SafeName reduces a client supplied file name to its last path element.
// Names that reduce to nothing usable are rejected with
// common.ErrorInvalidFileName.
func SafeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	switch {
	case name == "", name == ".", name == "..":
		return "", common.ErrorInvalidFileName
	case strings.ContainsRune(name, 0):
		return "", common.ErrorInvalidFileName
	}

	return name, nil
}
