//go:build !windows

package bootstrap

const (
	envBinDir        = "bin"
	pipExecutable    = "pip"
	pythonExecutable = "python"
)
