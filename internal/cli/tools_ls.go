package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aboutctl/internal/config"
	"aboutctl/internal/tools"
)

func init() {
	toolsCmd.AddCommand(toolsLsCmd)
}

var toolsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Detect every configured tool",
	Long:  "Run detection for each tool in tools.json and print one status line per tool.",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := config.BuildRegistry()
		if err != nil {
			return err
		}
		for _, res := range reg.DetectAll() {
			fmt.Println(toolLine(res))
		}
		return nil
	},
}

func toolLine(res tools.Result) string {
	var line strings.Builder
	line.WriteString(fmt.Sprintf("- %s: ", res.Name))
	switch res.Status {
	case tools.StatusAvailable:
		ver := res.Version
		if ver == "" {
			ver = "?"
		}
		line.WriteString(fmt.Sprintf("%s (%s)", ver, res.Path))
	case tools.StatusError:
		line.WriteString(fmt.Sprintf("found but version unavailable (%s)", res.Path))
	default:
		line.WriteString("not found")
	}
	return line.String()
}
