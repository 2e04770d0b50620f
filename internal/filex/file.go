// Package filex resolves on-disk locations for client state.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveDataFile makes sure the directory of name exists and returns the
// absolute path of name. Relative names are resolved against dataDir, and a
// relative dataDir against the working directory. The directory is created
// with owner-only permissions since it holds the session token.
func ResolveDataFile(dataDir, name string) (string, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(dataDir, name)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", name, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return abs, nil
}
