package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/E-M-Bailey/kattis-util/internal/config"
)

func TestStatus_ReportsBootstrappedCheckout(t *testing.T) {
	root := seedProject(t)
	if err := os.MkdirAll(filepath.Join(root, ".venv", "bin"), 0o755); err != nil {
		t.Fatalf("pre-create env dir: %v", err)
	}
	submodule := filepath.Join(root, "kattis-cli")
	if err := os.MkdirAll(submodule, 0o755); err != nil {
		t.Fatalf("create submodule dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(submodule, "submit.py"), nil, 0o644); err != nil {
		t.Fatalf("seed submodule file: %v", err)
	}

	var out bytes.Buffer
	m := newTestManager(config.Default(), &fakeRunner{})
	m.SetStatusWriter(&out)

	report, err := m.Status(context.Background(), root)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}

	if report.Root != root {
		t.Fatalf("expected root %s, got %s", root, report.Root)
	}
	if !report.EnvPresent || !report.ManifestPresent || !report.SubmodulePresent {
		t.Fatalf("expected everything present, got %+v", report)
	}
	if report.Python != pythonPath(filepath.Join(root, ".venv")) {
		t.Fatalf("unexpected interpreter path %q", report.Python)
	}

	rendered := out.String()
	for _, want := range []string{"environment:  present", "manifest:     present", "submodule:    initialized"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected report to contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestStatus_ReportsMissingPieces(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "kattis.cfg"), nil, 0o644); err != nil {
		t.Fatalf("seed marker: %v", err)
	}
	// Empty submodule dir counts as uninitialized.
	if err := os.MkdirAll(filepath.Join(root, "kattis-cli"), 0o755); err != nil {
		t.Fatalf("create submodule dir: %v", err)
	}

	var out bytes.Buffer
	m := newTestManager(config.Default(), &fakeRunner{})
	m.SetStatusWriter(&out)

	report, err := m.Status(context.Background(), root)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if report.EnvPresent || report.ManifestPresent || report.SubmodulePresent {
		t.Fatalf("expected everything missing, got %+v", report)
	}
	if report.Python != "" {
		t.Fatalf("expected no interpreter without environment, got %q", report.Python)
	}

	rendered := out.String()
	for _, want := range []string{"environment:  absent", "manifest:     absent", "submodule:    uninitialized"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected report to contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestStatus_MissingMarker(t *testing.T) {
	m := newTestManager(config.Default(), &fakeRunner{})
	_, err := m.Status(context.Background(), t.TempDir())
	assertReason(t, err, ReasonMarkerMissing)
}
