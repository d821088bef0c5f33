package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "KATTISENV_"

// Load reads configuration using a 3-layer hierarchy (highest precedence
// last):
//
//  1. Built-in defaults
//  2. Optional YAML file at path (missing file is not an error)
//  3. Environment variables (KATTISENV_ prefix)
//
// Environment variable mapping uses key matching against known config keys
// so that KATTISENV_VENV_DIR resolves to "venv.dir" rather than an
// ambiguous underscore split:
//
//	KATTISENV_MARKER         -> marker
//	KATTISENV_VENV_DIR       -> venv.dir
//	KATTISENV_VENV_PYTHON    -> venv.python
//	KATTISENV_SUBMODULE_PATH -> submodule.path
//	KATTISENV_LOG_LEVEL      -> log.level
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 2: optional project config file.
	if path != "" {
		err := k.Load(file.Provider(path), yaml.Parser())
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// Layer 3: environment variables.
	envLookup := buildEnvLookup()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ToLower(key)
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Layer 1 is the pre-populated struct; koanf only overwrites keys that
	// are actually present in the file or environment layers.
	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf
// dotted keys ("venv_dir" -> "venv.dir").
func buildEnvLookup() map[string]string {
	keys := []string{
		"marker",
		"manifest",
		"venv.dir",
		"venv.python",
		"submodule.path",
		"log.level",
	}
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
