package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	projectRootEnv    = "PROJECT_ROOT"
	projectRootMarker = "go.mod"
)

// resolveProjectRoot picks the project root from the explicit value, the
// PROJECT_ROOT variable, the nearest ancestor holding go.mod, or the working
// directory, in that order. The result is always absolute.
func resolveProjectRoot(explicit string) (string, error) {
	root := strings.TrimSpace(explicit)
	if root == "" {
		root = strings.TrimSpace(os.Getenv(projectRootEnv))
	}

	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		root = findProjectRoot(wd)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root %q: %w", root, err)
	}
	return abs, nil
}

// findProjectRoot walks up from start looking for the module marker and
// returns start itself when none is found.
func findProjectRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, projectRootMarker)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}
