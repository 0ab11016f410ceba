package ui

import (
	"fmt"
	"io"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"aboutctl/internal/appinfo"
)

// TextRenderer writes the plain summary lines to Out. It is the non-TTY
// presentation path.
type TextRenderer struct {
	Out io.Writer
}

var _ appinfo.Renderer = TextRenderer{}

func (r TextRenderer) Render(info appinfo.Info) error {
	for _, line := range info.SummaryLines() {
		if _, err := fmt.Fprintln(r.Out, line); err != nil {
			return err
		}
	}
	return nil
}

// JSONRenderer writes the snapshot as indented JSON to Out.
type JSONRenderer struct {
	Out io.Writer
}

var _ appinfo.Renderer = JSONRenderer{}

func (r JSONRenderer) Render(info appinfo.Info) error {
	b, err := info.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.Out, string(b))
	return err
}

// padLinesToWidth pads every line of s with spaces up to width, accounting
// for wide runes, so column joins do not bleed through.
func padLinesToWidth(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if w := runewidth.StringWidth(ln); w < width {
			lines[i] = ln + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(lines, "\n")
}
