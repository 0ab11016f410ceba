package cli

import (
	"github.com/spf13/cobra"

	"aboutctl/internal/server"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8787", "listen address")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the snapshot over HTTP",
	Long:  "Expose /api/info, /api/tools and /api/tools/:name. Detection runs fresh on every request; tools.json is watched for changes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := server.New(serveAddr, selfIdentity())
		if err != nil {
			return err
		}
		return s.Start(cmd.Context())
	},
}
