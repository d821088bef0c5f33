package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/E-M-Bailey/kattis-util/internal/project"
)

// Clean removes the virtual environment. An absent environment is success,
// not an error, so clean is idempotent.
func (m *Manager) Clean(ctx context.Context, startDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	layout, err := m.resolveLayout(opClean, startDir)
	if err != nil {
		return err
	}
	steps := []step{
		{
			name:   "remove virtual environment",
			reason: ReasonEnvRemove,
			run: func(ctx context.Context) error {
				return m.removeEnv(layout)
			},
		},
	}
	return m.runSteps(ctx, opClean, steps)
}

func (m *Manager) removeEnv(layout project.Layout) error {
	if !isPathWithinDir(layout.EnvDir, layout.Root) {
		return fmt.Errorf("refusing to remove environment outside the project root: %s", layout.EnvDir)
	}

	if _, err := os.Stat(layout.EnvDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			m.log.Debug("virtual environment already absent", zap.String("dir", layout.EnvDir))
			return nil
		}
		return fmt.Errorf("check environment directory %s: %w", layout.EnvDir, err)
	}

	if err := m.removeAll(layout.EnvDir); err != nil {
		return fmt.Errorf("remove %s: %w", layout.EnvDir, err)
	}
	m.log.Info("removed virtual environment", zap.String("dir", layout.EnvDir))
	return nil
}
