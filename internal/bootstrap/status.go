package bootstrap

import (
	"context"
	"os"
)

// Report describes what a checkout currently has in place. Status never
// mutates anything; missing pieces are reported, not enforced.
type Report struct {
	Root             string
	EnvPresent       bool
	ManifestPresent  bool
	SubmodulePresent bool
	Python           string
}

// Status resolves the checkout and reports the presence of the environment,
// the manifest, and the vendored submodule. Only the marker precondition
// can fail; everything else is informational.
func (m *Manager) Status(ctx context.Context, startDir string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	layout, err := m.resolveLayout(opStatus, startDir)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Root:             layout.Root,
		EnvPresent:       dirExists(layout.EnvDir),
		ManifestPresent:  fileExists(layout.Manifest),
		SubmodulePresent: dirNonEmpty(layout.Submodule),
	}
	if report.EnvPresent {
		report.Python = pythonPath(layout.EnvDir)
	}

	m.writeReport(report)
	return report, nil
}

func (m *Manager) writeReport(report Report) {
	m.statusf("project root: %s\n", report.Root)
	m.statusf("environment:  %s (%s)\n", presence(report.EnvPresent), m.cfg.Venv.Dir)
	if report.Python != "" {
		m.statusf("interpreter:  %s\n", report.Python)
	}
	m.statusf("manifest:     %s (%s)\n", presence(report.ManifestPresent), m.cfg.Manifest)
	m.statusf("submodule:    %s (%s)\n", initialized(report.SubmodulePresent), m.cfg.Submodule.Path)
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "absent"
}

func initialized(ok bool) string {
	if ok {
		return "initialized"
	}
	return "uninitialized"
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirNonEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}
