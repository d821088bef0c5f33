//go:build windows

package bootstrap

const (
	envBinDir        = "Scripts"
	pipExecutable    = "pip.exe"
	pythonExecutable = "python.exe"
)
