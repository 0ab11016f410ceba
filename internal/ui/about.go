package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"aboutctl/internal/appinfo"
	"aboutctl/internal/tools"
)

const okZone = "about.btn.ok"

// AboutModel is the terminal About dialog: identity and features on top,
// scrollable technical details below, OK button to dismiss.
type AboutModel struct {
	info appinfo.Info

	vp       viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewAbout builds the dialog model for a gathered snapshot.
func NewAbout(info appinfo.Info) AboutModel {
	return AboutModel{info: info}
}

func (m AboutModel) Init() tea.Cmd {
	return nil
}

func (m AboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if zone.Get(okZone).InBounds(msg) {
				m.quitting = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// layout sizes the viewport for the current terminal and fills its content.
func (m *AboutModel) layout() {
	cw := m.contentWidth()
	head := lipgloss.Height(m.headerView(cw))
	// frame border+padding rows, header, button row and its spacing
	avail := m.height - head - 7
	if avail < 4 {
		avail = 4
	}
	if !m.ready {
		m.vp = viewport.New(cw, avail)
		m.ready = true
	} else {
		m.vp.Width = cw
		m.vp.Height = avail
	}
	m.vp.SetContent(padLinesToWidth(m.technicalView(cw), cw))
}

// contentWidth is the inner dialog width for the current terminal size.
func (m AboutModel) contentWidth() int {
	w := m.width - 8
	if w > 76 {
		w = 76
	}
	if w < 40 {
		w = 40
	}
	return w
}

func (m AboutModel) headerView(width int) string {
	return renderIdentity(m.info.Identity, width)
}

// technicalView renders the selectable bottom section: execution details
// plus one line per tool result.
func (m AboutModel) technicalView(width int) string {
	ex := m.info.Execution

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("Execution Mode:  ", ex.Mode)
	row("Binary:          ", ex.Binary)
	row("Go:              ", ex.GoVersion)
	row("Platform:        ", ex.Platform)
	if ex.Revision != "" {
		rev := ex.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if ex.Dirty {
			rev += " (dirty)"
		}
		row("Revision:        ", rev)
	}

	if len(m.info.Tools) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("External tools") + "\n")
		for _, t := range m.info.Tools {
			b.WriteString(toolStatusLine(t, width))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// toolStatusLine colors a single detection result for the dialog.
func toolStatusLine(t tools.Result, width int) string {
	name := valueStyle.Render(t.Name)
	switch t.Status {
	case tools.StatusAvailable:
		ver := t.Version
		if ver == "" {
			ver = "?"
		}
		ok := lipgloss.NewStyle().Foreground(Theme.Primary).Render("● ")
		return ok + name + mutedStyle.Render("  v"+ver+"  "+t.Path)
	case tools.StatusError:
		warn := lipgloss.NewStyle().Foreground(Theme.Yellow).Render("● ")
		return warn + name + mutedStyle.Render("  found but version unavailable  "+t.Path)
	default:
		miss := lipgloss.NewStyle().Foreground(Theme.Red).Render("● ")
		return miss + name + mutedStyle.Render("  not found")
	}
}

func (m AboutModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		// first frame before the window size arrives
		m.width, m.height = 80, 24
		m.layout()
	}
	cw := m.contentWidth()

	title := titleStyle.Render("About " + m.info.Identity.Title())
	sep := lipgloss.NewStyle().Foreground(Theme.Border).Render(strings.Repeat("─", cw))
	button := zone.Mark(okZone, okButtonStyle.Render("OK"))
	buttonRow := lipgloss.PlaceHorizontal(cw, lipgloss.Right, button)
	hint := mutedStyle.Render("enter/q to close · arrows to scroll")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.headerView(cw),
		sep,
		m.vp.View(),
		sep,
		hint,
		buttonRow,
	)
	dialog := frameStyle.Width(cw).Render(body)
	if m.width > 0 && m.height > 0 {
		dialog = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return zone.Scan(dialog)
}
