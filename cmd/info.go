package cmd

import (
	"fmt"

	"github.com/nate-maxwell/core-utils/core/config"
	"github.com/nate-maxwell/core-utils/core/logger"
	"github.com/nate-maxwell/core-utils/core/term"
	"github.com/nate-maxwell/core-utils/feature/sysinfo"

	"github.com/spf13/cobra"
)

// infoCmd prints a snapshot of the host environment.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print host and terminal information",
	RunE:  runInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, logger.NewRunID())
	l.Debug("Collecting host information")

	host := sysinfo.OS()
	width, height := term.Size()

	fmt.Println(term.CenterHeader("core-utils", '='))
	fmt.Printf("System:   %s\n", host.System)
	if host.Release != "" {
		fmt.Printf("Release:  %s\n", host.Release)
	}
	if host.Version != "" {
		fmt.Printf("Version:  %s\n", host.Version)
	}
	fmt.Printf("Date:     %s\n", sysinfo.Date())
	fmt.Printf("Time:     %s\n", sysinfo.Clock())
	fmt.Printf("Terminal: %dx%d\n", width, height)
	return nil
}
