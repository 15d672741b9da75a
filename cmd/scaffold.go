package cmd

import (
	"fmt"

	"github.com/nate-maxwell/core-utils/core/config"
	"github.com/nate-maxwell/core-utils/core/logger"
	"github.com/nate-maxwell/core-utils/feature/scaffold"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outlineFile string

// scaffoldCmd creates a folder tree from a YAML outline.
var scaffoldCmd = &cobra.Command{
	Use:   "scaffold DEST",
	Short: "Create a folder tree from a YAML outline",
	Long: `Create the folder tree described by a YAML outline under DEST.

The outline is a nested mapping of directory names:

  shots:
    sh010:
      plates:
      renders:
    sh020:
      plates:

Existing directories are left alone, so re-running an outline is safe.`,
	Args: cobra.ExactArgs(1),
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().StringVar(&outlineFile, "outline", "", "YAML outline file")

	RootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	dest := args[0]
	if outlineFile == "" {
		return fmt.Errorf("--outline is required")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, logger.NewRunID())

	if !scaffold.CanCreate(dest) {
		return fmt.Errorf("cannot create %s: invalid name or unwritable location", dest)
	}

	outline, err := scaffold.LoadOutline(outlineFile)
	if err != nil {
		return fmt.Errorf("failed to load outline %s: %w", outlineFile, err)
	}

	l.Info("Creating folder tree", zap.String("dest", dest), zap.String("outline", outlineFile))

	if err := scaffold.Create(dest, outline); err != nil {
		return fmt.Errorf("failed to create folder tree: %w", err)
	}

	fmt.Printf("Created folder tree under %s\n", dest)
	return nil
}
