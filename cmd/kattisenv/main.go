// kattisenv bootstraps and tears down the local development environment of
// a kattis-util checkout: the Python virtual environment, its pinned
// dependencies, and the vendored kattis-cli submodule.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/E-M-Bailey/kattis-util/internal/bootstrap"
	"github.com/E-M-Bailey/kattis-util/internal/config"
	"github.com/E-M-Bailey/kattis-util/internal/logging"
	"github.com/E-M-Bailey/kattis-util/internal/project"
)

var (
	// Global flags
	rootDir string
	cfgPath string
	verbose bool

	logger  *zap.Logger
	manager *bootstrap.Manager
)

var rootCmd = &cobra.Command{
	Use:   "kattisenv",
	Short: "Manage the kattis-util development environment",
	Long: `kattisenv bootstraps and tears down the local development environment
for a kattis-util checkout.

setup creates the virtual environment, installs the pinned dependencies and
initializes the vendored kattis-cli submodule; clean removes the environment
again. update additionally pulls the latest revision of the checkout and of
the submodule before reinstalling.

Every command requires the checkout's sentinel marker (kattis.cfg) to be
present at the project root; the root is found by walking upward from the
working directory or from --root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return &usageError{err: fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show help.
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Log.Level, verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		manager = bootstrap.NewManager(*cfg, logger)
		manager.SetStatusWriter(cmd.OutOrStdout())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the virtual environment, install dependencies, sync the submodule",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return manager.Setup(cmd.Context(), rootDir)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the virtual environment",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return manager.Clean(cmd.Context(), rootDir)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Pull the latest revisions, then run setup",
	Long: `update pulls the latest revision of the checkout and of the vendored
submodule before running the setup pipeline. The pull steps are best-effort:
a pull failure is logged and skipped, while the environment and installer
steps keep their fail-fast behavior.`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return manager.Update(cmd.Context(), rootDir)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report what the checkout currently has in place",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := manager.Status(cmd.Context(), rootDir)
		return err
	},
}

// usageError marks an invocation mistake (unknown command, bad flag,
// unexpected arguments) so main can exit 2 instead of 1.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

// exitCode maps an Execute error to the process exit status: 2 for usage
// mistakes, 1 for every guarded operation failure.
func exitCode(err error) int {
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}

// loadConfig resolves the optional project config file. With no --config
// flag, the file is looked up by walking upward from --root, the same way
// the sentinel marker is; a missing file falls back to defaults.
func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		if root, err := project.FindRoot(rootDir, config.ConfigFileName); err == nil {
			path = filepath.Join(root, config.ConfigFileName)
		}
	}
	return config.Load(path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "directory to resolve the project root from")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: .kattisenv.yaml at the project root)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(setupCmd, cleanCmd, updateCmd, statusCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
