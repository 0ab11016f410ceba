package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the dialog color palette and common styles.
type dialogTheme struct {
	Primary   lipgloss.Color // accents, OK button
	Yellow    lipgloss.Color // warnings (tool error)
	Red       lipgloss.Color // hard failures
	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	OnAccent  lipgloss.Color // text on accent backgrounds
}

// Theme defines the current global design theme for the About dialog.
var Theme = dialogTheme{
	Primary:   lipgloss.Color("#4d9375"),
	Yellow:    lipgloss.Color("#e6cc77"),
	Red:       lipgloss.Color("#cb7676"),
	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),
	Border:    lipgloss.Color("#3a3a3a"),
	OnAccent:  lipgloss.Color("#222222"),
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Theme.Border).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(Theme.Primary).
			Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(Theme.Secondary)
	valueStyle = lipgloss.NewStyle().Foreground(Theme.Text)
	mutedStyle = lipgloss.NewStyle().Foreground(Theme.Muted)

	okButtonStyle = lipgloss.NewStyle().
			Background(Theme.Primary).
			Foreground(Theme.OnAccent).
			Bold(true).
			Padding(0, 3)
)
