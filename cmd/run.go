package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nate-maxwell/core-utils/core/config"
	"github.com/nate-maxwell/core-utils/core/logger"
	"github.com/nate-maxwell/core-utils/feature/proc"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runTimeout int

// runCmd executes a command with captured output.
var runCmd = &cobra.Command{
	Use:   "run -- COMMAND [ARGS...]",
	Short: "Run a command and capture its output",
	Long: `Run a command, wait for it, and print its captured output. The child's
exit code becomes this command's exit code.

Examples:
  # Run with the configured timeout
  core-utils run -- render --frame 101

  # Cap the run at 30 seconds
  core-utils run --timeout 30 -- render --frame 101`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

// whichCmd resolves an executable name against PATH.
var whichCmd = &cobra.Command{
	Use:   "which EXECUTABLE",
	Short: "Print the PATH resolution of an executable",
	Args:  cobra.ExactArgs(1),
	RunE:  runWhich,
}

func init() {
	runCmd.Flags().IntVar(&runTimeout, "timeout", 0, "Timeout in seconds (0 uses the configured default)")

	RootCmd.AddCommand(runCmd, whichCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, logger.NewRunID())

	timeout := cfg.Proc.Timeout()
	if runTimeout > 0 {
		timeout = time.Duration(runTimeout) * time.Second
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := proc.Run(ctx, args, proc.Options{})
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", args[0], err)
	}

	fmt.Print(result.Stdout)
	fmt.Fprint(os.Stderr, result.Stderr)

	l.Debug("Command finished",
		zap.String("command", args[0]),
		zap.Int("exit_code", result.ExitCode),
		zap.Duration("duration", result.Duration),
	)

	if result.ExitCode != 0 {
		_ = l.Sync()
		os.Exit(result.ExitCode)
	}
	return nil
}

func runWhich(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, logger.NewRunID())

	path, ok := proc.Which(args[0])
	if !ok {
		return fmt.Errorf("%s not found on PATH", args[0])
	}

	l.Debug("Resolved executable", zap.String("name", args[0]), zap.String("path", path))

	fmt.Println(path)
	return nil
}
