package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nate-maxwell/core-utils/core/config"
	"github.com/nate-maxwell/core-utils/core/logger"
	"github.com/nate-maxwell/core-utils/feature/scaffold"
	"github.com/nate-maxwell/core-utils/feature/size"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunClean bool

// cleanCmd removes the loose files of a working directory.
var cleanCmd = &cobra.Command{
	Use:   "clean DIR",
	Short: "Remove the regular files directly inside a directory",
	Long: `Remove every regular file directly inside DIR. Subdirectories and their
contents are untouched. Use --dry-run to list what would go without
removing anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRunClean, "dry-run", false, "List files without removing them")

	RootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, logger.NewRunID())

	names, err := scaffold.DirFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	// Total the sizes before touching anything so the freed amount is
	// reportable even after removal.
	var total uint64
	for _, name := range names {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", name, err)
		}
		total += uint64(info.Size())
	}

	if dryRunClean {
		for _, name := range names {
			fmt.Println(name)
		}
		fmt.Printf("Would remove %d file(s), freeing %s\n", len(names), size.Human(total))
		return nil
	}

	removed, err := scaffold.CleanDir(dir)
	if err != nil {
		return fmt.Errorf("failed to clean %s: %w", dir, err)
	}

	l.Info("Cleaned directory",
		zap.String("dir", dir),
		zap.Int("removed", len(removed)),
		zap.String("freed", size.Human(total)),
	)

	fmt.Printf("Removed %d file(s), freeing %s\n", len(removed), size.Human(total))
	return nil
}
