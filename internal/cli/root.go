package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aboutctl/internal/app"
	"aboutctl/internal/appinfo"
	"aboutctl/internal/config"
	"aboutctl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "aboutctl",
	Short: "aboutctl – application info and About dialogs for the terminal",
	Long:  "aboutctl gathers app identity, runtime environment and external tool availability, and renders it as text, JSON, an About dialog or an HTTP API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: open the About dialog
		return app.Start(gatherSelf())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// selfIdentity is the identity aboutctl reports for itself. Host
// applications embedding the library supply their own.
func selfIdentity() appinfo.Identity {
	return appinfo.Identity{
		Name:        "aboutctl",
		Version:     version.AppVersion,
		Description: "Application info gathering and About dialogs for the terminal.",
		Features: []string{
			"External tool detection with version probing",
			"Runtime environment snapshot",
			"Text, JSON, dialog and HTTP rendering",
		},
	}
}

// gatherSelf builds the full snapshot using the configured tool catalog.
// Config errors degrade to a snapshot without tool results.
func gatherSelf() appinfo.Info {
	reg, err := config.BuildRegistry()
	if err != nil {
		reg = nil
	}
	return appinfo.Gather(selfIdentity(), reg)
}
