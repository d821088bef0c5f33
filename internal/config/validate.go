package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		validateRelPath("marker", c.Marker),
		validateRelPath("manifest", c.Manifest),
		validateRelPath("venv.dir", c.Venv.Dir),
		validateInterpreter(c.Venv.Python),
		validateRelPath("submodule.path", c.Submodule.Path),
		c.Log.validate(),
	)
}

// validateRelPath rejects values that would escape the project root. Marker,
// manifest, environment and submodule locations are all fixed relative paths
// under the root.
func validateRelPath(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	if filepath.IsAbs(value) {
		return fmt.Errorf("%s must be relative to the project root, got %q", key, value)
	}
	clean := filepath.Clean(value)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s must not traverse outside the project root, got %q", key, value)
	}
	return nil
}

func validateInterpreter(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("venv.python must not be empty")
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level)
	}
}
