package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/nate-maxwell/core-utils/core/config"
	"github.com/nate-maxwell/core-utils/core/logger"
	"github.com/nate-maxwell/core-utils/feature/natsort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sortCmd orders names the way a person reads them.
var sortCmd = &cobra.Command{
	Use:   "sort [paths...]",
	Short: "Sort names in natural order",
	Long: `Sort names so embedded numbers compare by value: file2 orders before
file10. Names come from the arguments, or from stdin (one per line) when
no arguments are given.`,
	RunE: runSort,
}

func init() {
	RootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, logger.NewRunID())

	paths := args
	if len(paths) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			paths = append(paths, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	natsort.SortPaths(paths)
	l.Debug("Sorted names", zap.Int("count", len(paths)))

	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
