// Package config provides configuration management for the toolkit.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env overlay.
//
// # Configuration Structure
//
// The Config struct is the central repository for all toolkit settings,
// divided into subsections:
//   - Log: Logging level and format
//   - Version: Version resolver defaults (number padding)
//   - Proc: Captured command execution defaults (timeout)
//
// Each subsection lives with the component it configures; this package
// only assembles and loads them.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Version.Padding)
package config
