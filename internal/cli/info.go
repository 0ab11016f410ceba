package cli

import (
	"os"

	"github.com/spf13/cobra"

	"aboutctl/internal/appinfo"
	"aboutctl/internal/ui"
)

var infoJSON bool

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output the snapshot as JSON")
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the application snapshot",
	Long:  "Gather identity, runtime environment and tool availability, and print it as summary lines or JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var r appinfo.Renderer = ui.TextRenderer{Out: os.Stdout}
		if infoJSON {
			r = ui.JSONRenderer{Out: os.Stdout}
		}
		return r.Render(gatherSelf())
	},
}
