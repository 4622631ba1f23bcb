package utils

import (
	"os"
	"path/filepath"
)

// RootEnv pins the project root when the server runs outside the source tree,
// for example from a container image that only ships the binary and pkg/.
const RootEnv = "OZPV_ROOT"

// GetProjectRoot returns $OZPV_ROOT when set. Otherwise it is the module root
// above the working directory, or "." when there is none.
func GetProjectRoot() string {
	if root := os.Getenv(RootEnv); root != "" {
		return filepath.Clean(root)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	if root, ok := moduleRoot(wd); ok {
		return root
	}
	return "."
}

func moduleRoot(dir string) (string, bool) {
	for ; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		if filepath.Dir(dir) == dir {
			return "", false
		}
	}
}

// Resolve returns path unchanged when absolute, otherwise joined onto the
// project root.
func Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(GetProjectRoot(), path)
}
