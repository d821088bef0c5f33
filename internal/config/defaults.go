package config

const (
	defaultMarker        = "kattis.cfg"
	defaultManifest      = "requirements.txt"
	defaultVenvDir       = ".venv"
	defaultPython        = "python3"
	defaultSubmodulePath = "kattis-cli"

	// ConfigFileName is the optional per-project config file, looked up at
	// the project root alongside the sentinel marker.
	ConfigFileName = ".kattisenv.yaml"
)

// Default returns the built-in configuration. File and environment layers
// overlay these values.
func Default() Config {
	return Config{
		Marker:   defaultMarker,
		Manifest: defaultManifest,
		Venv: VenvConfig{
			Dir:    defaultVenvDir,
			Python: defaultPython,
		},
		Submodule: SubmoduleConfig{
			Path: defaultSubmodulePath,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
