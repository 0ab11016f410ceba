package cli

import (
	"github.com/spf13/cobra"

	"aboutctl/internal/app"
)

func init() {
	rootCmd.AddCommand(aboutCmd)
}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Open the About dialog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Start(gatherSelf())
	},
}
