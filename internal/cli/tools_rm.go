package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aboutctl/internal/config"
)

func init() {
	toolsCmd.AddCommand(toolsRmCmd)
}

var toolsRmCmd = &cobra.Command{
	Use:     "rm <name>...",
	Aliases: []string{"remove"},
	Short:   "Remove tools from the catalog",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, missing, err := config.Remove(args)
		if err != nil {
			return err
		}
		if len(removed) > 0 {
			fmt.Printf("removed: %s\n", strings.Join(removed, ", "))
		}
		if len(missing) > 0 {
			fmt.Printf("not in catalog: %s\n", strings.Join(missing, ", "))
		}
		return nil
	},
}
