package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"aboutctl/internal/appinfo"
	"aboutctl/internal/ui"
)

// Start opens the About dialog for the given snapshot and blocks until the
// user dismisses it.
func Start(info appinfo.Info) error {
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	_, err := tea.NewProgram(ui.NewAbout(info), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// DialogRenderer adapts Start to the appinfo.Renderer interface.
type DialogRenderer struct{}

var _ appinfo.Renderer = DialogRenderer{}

func (DialogRenderer) Render(info appinfo.Info) error {
	return Start(info)
}
