package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"aboutctl/internal/config"
)

func init() {
	toolsCmd.AddCommand(toolsAddCmd)
}

var toolsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a tool to the catalog interactively",
	Long:  "Open a form to describe an external tool and save it to tools.json.",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := runAddForm()
		if err != nil {
			return err
		}
		replaced, err := config.Add(entry)
		if err != nil {
			return err
		}
		if replaced {
			fmt.Printf("\n✓ replaced %q in tools.json\n\n", entry.Name)
		} else {
			fmt.Printf("\n✓ added %q to tools.json\n\n", entry.Name)
		}
		return nil
	},
}

// runAddForm collects a tool entry from the user.
func runAddForm() (config.Entry, error) {
	var (
		name      string
		command   string
		flag      string
		fallbacks string
		timeout   string
	)

	green := lipgloss.Color("#4d9375")
	theme := huh.ThemeCharm()
	theme.Focused.Title = theme.Focused.Title.Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("New tool").Description("Describe the external tool to detect."),
			huh.NewInput().
				Title("Display name").
				Value(&name).
				Validate(notBlank("name")),
			huh.NewInput().
				Title("Command").
				Description("Executable name resolved against PATH").
				Value(&command).
				Validate(notBlank("command")),
			huh.NewInput().
				Title("Version flag").
				Placeholder("--version").
				Value(&flag),
			huh.NewInput().
				Title("Fallback paths").
				Description("Comma-separated absolute paths to the executable").
				Value(&fallbacks),
			huh.NewInput().
				Title("Timeout (seconds)").
				Placeholder("5").
				Value(&timeout).
				Validate(validTimeout),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return config.Entry{}, err // form canceled or failed
	}

	entry := config.Entry{
		Name:        strings.TrimSpace(name),
		Command:     strings.TrimSpace(command),
		VersionFlag: strings.TrimSpace(flag),
	}
	for _, p := range strings.Split(fallbacks, ",") {
		if p = strings.TrimSpace(p); p != "" {
			entry.FallbackPaths = append(entry.FallbackPaths, p)
		}
	}
	if t := strings.TrimSpace(timeout); t != "" {
		entry.VersionTimeoutSeconds, _ = strconv.ParseFloat(t, 64)
	}
	return entry, nil
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validTimeout(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("timeout must be a positive number of seconds")
	}
	return nil
}
