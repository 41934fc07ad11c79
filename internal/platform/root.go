package platform

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aretw0/sheaf/pkg/config"
)

// ErrRootNotFound is returned by FindRoot when no project root exists above the start directory.
var ErrRootNotFound = errors.New("root not found")

// FindRoot looks upwards from startDir for a project root: a directory
// holding a sheaf config file or a .git directory.
// It returns the absolute path of the first match.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasConfig(dir) || hasFile(dir, ".git") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// SearchDirs returns the directories in which to look for a config file:
// the working directory, then the project root above it if there is one.
func SearchDirs(wd string) []string {
	if abs, err := filepath.Abs(wd); err == nil {
		wd = abs
	}
	dirs := []string{wd}
	if root, err := FindRoot(wd); err == nil && root != wd {
		dirs = append(dirs, root)
	}
	return dirs
}

func hasConfig(dir string) bool {
	for _, ext := range []string{".yaml", ".yml"} {
		if hasFile(dir, config.FileName+ext) {
			return true
		}
	}
	return false
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
