package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/metal-toolbox/user-echo/internal/app"
)

// CfgFile is the path given with --config, empty when unset.
var CfgFile string

// RootCmd is the base command; subcommands register themselves in init.
var RootCmd = &cobra.Command{
	Use:   app.AppName,
	Short: "Validate and echo user names over HTTP",
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&CfgFile, "config", "", "configuration file (environment overrides use the "+app.AppName+"_ prefix)")
}
