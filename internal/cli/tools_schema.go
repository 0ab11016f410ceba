package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"aboutctl/internal/config"
)

func init() {
	toolsCmd.AddCommand(toolsSchemaCmd)
}

var toolsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for tools.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := config.MarshalSchema(config.ToolsSchema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
