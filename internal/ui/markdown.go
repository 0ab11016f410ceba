package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"aboutctl/internal/appinfo"
)

// identityMarkdown builds the top dialog section as markdown.
func identityMarkdown(id appinfo.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", id.Title())
	if id.Version != "" {
		fmt.Fprintf(&b, "**Version:** %s\n\n", id.Version)
	}
	if id.CommitDate != "" {
		fmt.Fprintf(&b, "**Commit Date:** %s\n\n", id.CommitDate)
	}
	if id.Author != "" {
		fmt.Fprintf(&b, "**Author:** %s\n\n", id.Author)
	}
	if id.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", id.Description)
	}
	if len(id.Features) > 0 {
		b.WriteString("**Features:**\n\n")
		for _, f := range id.Features {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}
	return b.String()
}

// renderIdentity renders the identity section with glamour, word-wrapped to
// width. Falls back to the raw markdown if the renderer cannot be built.
func renderIdentity(id appinfo.Identity, width int) string {
	md := identityMarkdown(id)
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
