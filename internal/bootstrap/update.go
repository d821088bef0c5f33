package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/E-M-Bailey/kattis-util/internal/project"
)

// Update pulls the latest revision of the checkout and of the vendored
// submodule, then runs the same guarded pipeline as Setup. The pull steps
// are deliberately best-effort: a failure there (offline machine, detached
// head) is logged and skipped, while the environment and installer steps
// keep their fail-fast contract.
func (m *Manager) Update(ctx context.Context, startDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	layout, err := m.resolveLayout(opUpdate, startDir)
	if err != nil {
		return err
	}

	m.pullLatest(ctx, layout)

	return m.runSteps(ctx, opUpdate, m.setupSteps(layout))
}

func (m *Manager) pullLatest(ctx context.Context, layout project.Layout) {
	pulls := []struct {
		dir  string
		args []string
	}{
		{layout.Root, []string{"submodule", "init"}},
		{layout.Root, []string{"pull"}},
		{layout.Submodule, []string{"pull"}},
	}

	for _, pull := range pulls {
		if ctx.Err() != nil {
			return
		}
		if _, err := m.runCommand(ctx, pull.dir, "git", pull.args...); err != nil {
			m.log.Warn("pull step failed, continuing",
				zap.String("dir", pull.dir),
				zap.Strings("args", pull.args),
				zap.Error(err))
			continue
		}
		m.log.Debug("pulled", zap.String("dir", pull.dir), zap.Strings("args", pull.args))
	}
}
