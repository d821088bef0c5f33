package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/E-M-Bailey/kattis-util/internal/project"
)

// Setup ensures the checkout is bootstrapped: the virtual environment
// exists, the manifest dependencies are installed into it, and the vendored
// submodule is initialized. Re-running converges to the same end state and
// never recreates an existing environment.
func (m *Manager) Setup(ctx context.Context, startDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	layout, err := m.resolveLayout(opSetup, startDir)
	if err != nil {
		return err
	}
	return m.runSteps(ctx, opSetup, m.setupSteps(layout))
}

func (m *Manager) setupSteps(layout project.Layout) []step {
	return []step{
		{
			name:   "create virtual environment",
			reason: ReasonEnvCreate,
			run: func(ctx context.Context) error {
				return m.ensureEnv(ctx, layout)
			},
		},
		{
			name:   "install dependencies",
			reason: ReasonInstaller,
			run: func(ctx context.Context) error {
				return m.installDeps(ctx, layout)
			},
		},
		{
			name:   "sync vendored submodule",
			reason: ReasonSubmodule,
			run: func(ctx context.Context) error {
				return m.syncSubmodule(ctx, layout)
			},
		},
	}
}

// ensureEnv creates the virtual environment when absent. A present
// environment is reused as-is.
func (m *Manager) ensureEnv(ctx context.Context, layout project.Layout) error {
	info, err := os.Stat(layout.EnvDir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", layout.EnvDir)
		}
		m.log.Debug("virtual environment already present", zap.String("dir", layout.EnvDir))
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("check environment directory %s: %w", layout.EnvDir, err)
	}

	python := m.cfg.Venv.Python
	if _, err := m.lookPath(python); err != nil {
		return fmt.Errorf("locate interpreter %q: %w", python, err)
	}
	if _, err := m.runCommand(ctx, layout.Root, python, "-m", "venv", m.cfg.Venv.Dir); err != nil {
		return fmt.Errorf("create virtual environment %s: %w", layout.EnvDir, err)
	}
	m.log.Info("created virtual environment", zap.String("dir", layout.EnvDir))
	return nil
}

// installDeps upgrades pip inside the environment and installs every
// requirement from the manifest. pip's own diagnostics surface through the
// wrapped error.
func (m *Manager) installDeps(ctx context.Context, layout project.Layout) error {
	pip := pipPath(layout.EnvDir)
	if _, err := m.runCommand(ctx, layout.Root, pip, "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("upgrade pip: %w", err)
	}
	if _, err := m.runCommand(ctx, layout.Root, pip, "install", "-r", m.cfg.Manifest); err != nil {
		return fmt.Errorf("install requirements from %s: %w", m.cfg.Manifest, err)
	}
	m.log.Info("installed dependencies", zap.String("manifest", layout.Manifest))
	return nil
}

func (m *Manager) syncSubmodule(ctx context.Context, layout project.Layout) error {
	if _, err := m.lookPath("git"); err != nil {
		return fmt.Errorf("locate git: %w", err)
	}
	if _, err := m.runCommand(ctx, layout.Root, "git", "submodule", "update", "--init", "--recursive"); err != nil {
		return fmt.Errorf("update submodule %s: %w", m.cfg.Submodule.Path, err)
	}
	m.log.Info("synchronized vendored submodule", zap.String("path", layout.Submodule))
	return nil
}
