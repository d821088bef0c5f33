// Package bootstrap implements the environment lifecycle for a kattis-util
// checkout: creating the virtual environment, installing the pinned
// dependencies, synchronizing the vendored kattis-cli submodule, and tearing
// the environment down again. External tools (python, pip, git) are invoked,
// never reimplemented.
package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/E-M-Bailey/kattis-util/internal/config"
	"github.com/E-M-Bailey/kattis-util/internal/project"
)

const (
	opSetup  = "setup"
	opClean  = "clean"
	opUpdate = "update"
	opStatus = "status"
)

// Manager runs the bootstrap operations. The exec/filesystem seams are
// function fields so tests can record invocations instead of running real
// tools.
type Manager struct {
	cfg config.Config
	log *zap.Logger

	lookPath   func(string) (string, error)
	runCommand func(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	removeAll  func(string) error
	statusOut  io.Writer
}

// NewManager returns a Manager wired to the real toolchain.
func NewManager(cfg config.Config, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		cfg:        cfg,
		log:        log,
		lookPath:   exec.LookPath,
		runCommand: runCommand,
		removeAll:  os.RemoveAll,
	}
}

// SetStatusWriter directs human-readable status output (the status
// operation's report) to writer. Nil disables it.
func (m *Manager) SetStatusWriter(writer io.Writer) {
	m.statusOut = writer
}

func (m *Manager) statusf(format string, args ...any) {
	if m.statusOut == nil {
		return
	}
	_, _ = fmt.Fprintf(m.statusOut, format, args...)
}

// resolveLayout locates the checkout root from startDir and derives the
// paths every step operates on. A missing marker is the precondition
// failure shared by all operations.
func (m *Manager) resolveLayout(op, startDir string) (project.Layout, error) {
	layout, err := project.Resolve(
		startDir,
		m.cfg.Marker,
		m.cfg.Venv.Dir,
		m.cfg.Manifest,
		m.cfg.Submodule.Path,
	)
	if err != nil {
		return project.Layout{}, &StepError{
			Op:     op,
			Step:   "resolve project root",
			Reason: ReasonMarkerMissing,
			Err:    err,
		}
	}
	m.log.Debug("resolved project root",
		zap.String("op", op),
		zap.String("root", layout.Root))
	return layout, nil
}

// step is one guarded stage of an operation pipeline. Pipelines abort on
// the first failure; there is no rollback.
type step struct {
	name   string
	reason Reason
	run    func(context.Context) error
}

func (m *Manager) runSteps(ctx context.Context, op string, steps []step) error {
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.log.Debug("running step", zap.String("op", op), zap.String("step", s.name))
		if err := s.run(ctx); err != nil {
			return &StepError{Op: op, Step: s.name, Reason: s.reason, Err: err}
		}
	}
	return nil
}

// runCommand executes name in dir and returns stdout. The trimmed tail of
// stderr is folded into the error so pip/git diagnostics survive wrapping.
func runCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil, err
	}
	return out, nil
}
