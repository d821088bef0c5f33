package bootstrap

import (
	"os"
	"path/filepath"
	"strings"
)

// pipPath returns the pip executable inside the virtual environment.
func pipPath(envDir string) string {
	return filepath.Join(envDir, envBinDir, pipExecutable)
}

// pythonPath returns the interpreter inside the virtual environment.
func pythonPath(envDir string) string {
	return filepath.Join(envDir, envBinDir, pythonExecutable)
}

// isPathWithinDir reports whether path sits at or below dir after cleaning.
// The environment directory is only ever removed when it resolves inside
// the checkout root.
func isPathWithinDir(path, dir string) bool {
	pathClean := filepath.Clean(path)
	dirClean := filepath.Clean(dir)
	if pathClean == dirClean {
		return true
	}
	return strings.HasPrefix(pathClean, dirClean+string(os.PathSeparator))
}
