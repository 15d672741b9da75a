package cmd

import (
	"fmt"

	"github.com/nate-maxwell/core-utils/core/config"
	"github.com/nate-maxwell/core-utils/core/logger"
	"github.com/nate-maxwell/core-utils/feature/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the version subcommands
	versionDir      string
	versionExt      string
	versionContains string
	versionPadding  int
)

// versionCmd is the parent command for version lookups.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Resolve trailing version numbers in a directory of files",
	Long: `Scan a directory of versioned files (shot_v001.exr, shot_v002.exr, ...)
and report either the latest existing version or the next number to write.`,
}

// latestCmd prints the path of the highest-versioned matching file.
var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the file with the highest trailing version number",
	Long: `Print the path of the file whose name ends in the highest version number.

Examples:
  # Latest .exr render in a shot folder
  core-utils version latest --dir ./renders --ext exr

  # Restrict to files whose path contains a token
  core-utils version latest --dir ./renders --ext exr --contains beauty`,
	RunE: runVersionLatest,
}

// nextCmd prints the next version number for a directory.
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next version number to use",
	Long: `Print the zero-padded version number that follows the highest one on disk.
A directory that does not exist yet yields the first version ("001" at the
default padding).`,
	RunE: runVersionNext,
}

func init() {
	versionCmd.AddCommand(latestCmd, nextCmd)

	latestCmd.Flags().StringVar(&versionDir, "dir", "", "Directory to scan")
	latestCmd.Flags().StringVar(&versionExt, "ext", "", "File extension to match (leading dot optional)")
	latestCmd.Flags().StringVar(&versionContains, "contains", "", "Only consider paths containing this substring")

	nextCmd.Flags().StringVar(&versionDir, "dir", "", "Directory to scan")
	nextCmd.Flags().StringVar(&versionExt, "ext", "", "File extension to match (leading dot optional)")
	nextCmd.Flags().StringVar(&versionContains, "contains", "", "Only consider paths containing this substring")
	nextCmd.Flags().IntVar(&versionPadding, "padding", 0, "Version number width (0 uses the configured default)")

	RootCmd.AddCommand(versionCmd)
}

func runVersionLatest(cmd *cobra.Command, args []string) error {
	if versionDir == "" || versionExt == "" {
		return fmt.Errorf("both --dir and --ext are required")
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

	name, ok, err := version.LatestFileInDir(versionDir, versionExt, versionContains)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", versionDir, err)
	}
	if !ok {
		return fmt.Errorf("no versioned %s file found in %s", versionExt, versionDir)
	}

	l.Debug("Resolved latest version",
		zap.String("dir", versionDir),
		zap.String("ext", versionExt),
		zap.String("file", name),
	)

	fmt.Println(name)
	return nil
}

func runVersionNext(cmd *cobra.Command, args []string) error {
	if versionDir == "" || versionExt == "" {
		return fmt.Errorf("both --dir and --ext are required")
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

	padding := versionPadding
	if padding < 1 {
		padding = cfg.Version.Normalized()
	}

	next, err := version.NextInDir(versionDir, versionExt, versionContains, padding)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", versionDir, err)
	}

	l.Debug("Resolved next version",
		zap.String("dir", versionDir),
		zap.String("ext", versionExt),
		zap.Int("padding", padding),
		zap.String("next", next),
	)

	fmt.Println(next)
	return nil
}
