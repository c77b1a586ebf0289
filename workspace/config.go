package workspace

import (
	"os"
	"path/filepath"
)

// ConfigName is the per-project configuration file the checker looks for.
const ConfigName = ".camelint.yaml"

// FindConfig searches for a configuration file starting at path and
// walking up the directory tree. It returns the config path and whether
// one was found.
func FindConfig(path string) (string, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	dir := absPath
	if fileInfo, err := os.Stat(absPath); err == nil && !fileInfo.IsDir() {
		dir = filepath.Dir(absPath)
	}

	for {
		candidate := filepath.Join(dir, ConfigName)
		if fileInfo, err := os.Stat(candidate); err == nil && !fileInfo.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
