// Package config provides configuration loading and validation for the
// bootstrap CLI. Values are loaded in layers: built-in defaults, an optional
// .kattisenv.yaml at the project root, then KATTISENV_-prefixed environment
// variables.
package config

// Config holds all configuration for the bootstrap manager.
type Config struct {
	Marker    string          `koanf:"marker"`
	Manifest  string          `koanf:"manifest"`
	Venv      VenvConfig      `koanf:"venv"`
	Submodule SubmoduleConfig `koanf:"submodule"`
	Log       LogConfig       `koanf:"log"`
}

// VenvConfig holds virtual environment settings.
type VenvConfig struct {
	Dir    string `koanf:"dir"`
	Python string `koanf:"python"`
}

// SubmoduleConfig holds vendored submodule settings.
type SubmoduleConfig struct {
	Path string `koanf:"path"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level string `koanf:"level"`
}
