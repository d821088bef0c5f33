package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "kattis.cfg", cfg.Marker)
	assert.Equal(t, "requirements.txt", cfg.Manifest)
	assert.Equal(t, ".venv", cfg.Venv.Dir)
	assert.Equal(t, "python3", cfg.Venv.Python)
	assert.Equal(t, "kattis-cli", cfg.Submodule.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".kattisenv.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kattisenv.yaml")
	content := `
venv:
  dir: env
  python: python3.12
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.Venv.Dir)
	assert.Equal(t, "python3.12", cfg.Venv.Python)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "kattis.cfg", cfg.Marker)
	assert.Equal(t, "requirements.txt", cfg.Manifest)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kattisenv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("venv:\n  dir: env\n"), 0o644))

	t.Setenv("KATTISENV_VENV_DIR", ".virtualenv")
	t.Setenv("KATTISENV_SUBMODULE_PATH", "vendor/kattis-cli")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ".virtualenv", cfg.Venv.Dir)
	assert.Equal(t, "vendor/kattis-cli", cfg.Submodule.Path)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kattisenv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("venv: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "absolute venv dir",
			mutate:  func(c *Config) { c.Venv.Dir = "/opt/venv" },
			wantErr: "venv.dir must be relative",
		},
		{
			name:    "traversing manifest",
			mutate:  func(c *Config) { c.Manifest = "../requirements.txt" },
			wantErr: "manifest must not traverse",
		},
		{
			name:    "empty marker",
			mutate:  func(c *Config) { c.Marker = "  " },
			wantErr: "marker must not be empty",
		},
		{
			name:    "empty interpreter",
			mutate:  func(c *Config) { c.Venv.Python = "" },
			wantErr: "venv.python must not be empty",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: "log.level must be one of",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
