package appinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"aboutctl/internal/system"
	"aboutctl/internal/tools"
)

// Identity is the static identity supplied by the host application.
type Identity struct {
	// Name is the full display name, e.g. "HSTL Photo Metadata Framework".
	Name string `json:"name"`
	// ShortName is the abbreviation shown in titles, e.g. "HPM".
	ShortName string `json:"shortName,omitempty"`
	// Version is the release version string.
	Version string `json:"version,omitempty"`
	// CommitDate is a human-readable build or commit date. When empty,
	// Gather fills it from the local Git repository, best-effort.
	CommitDate  string   `json:"commitDate,omitempty"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// Title returns the display title, with the short name appended when set.
func (id Identity) Title() string {
	if id.ShortName != "" {
		return fmt.Sprintf("%s [ %s ]", id.Name, id.ShortName)
	}
	return id.Name
}

// Info is the complete application snapshot: identity plus detected
// execution environment plus tool detection results. It is plain data;
// renderers consume it without touching the detection core.
type Info struct {
	Identity  Identity         `json:"identity"`
	Execution system.Execution `json:"execution"`
	Tools     []tools.Result   `json:"tools"`
}

// Renderer presents an Info snapshot to the user. Implementations include
// the plain-text summary and the terminal About dialog.
type Renderer interface {
	Render(info Info) error
}

// Gather detects the runtime environment, runs every registered tool probe,
// and returns the combined snapshot. A nil registry yields no tool results.
func Gather(identity Identity, reg *tools.Registry) Info {
	if identity.CommitDate == "" {
		if wd, err := os.Getwd(); err == nil {
			if gi, _ := system.GetGitInfo(context.Background(), wd); gi.InRepo {
				identity.CommitDate = gi.CommitDate
			}
		}
	}

	info := Info{
		Identity:  identity,
		Execution: system.DetectExecution(),
	}
	if reg != nil {
		info.Tools = reg.DetectAll()
	}
	return info
}

// JSON serializes the snapshot as indented JSON.
func (i Info) JSON() ([]byte, error) {
	return json.MarshalIndent(i, "", "  ")
}

// SummaryLines renders the snapshot as human-readable lines for CLI output.
func (i Info) SummaryLines() []string {
	id := i.Identity
	ex := i.Execution

	lines := []string{id.Title()}
	if id.Version != "" {
		lines = append(lines, fmt.Sprintf("  Version:      %s", id.Version))
	}
	if id.CommitDate != "" {
		lines = append(lines, fmt.Sprintf("  Commit Date:  %s", id.CommitDate))
	}
	if id.Author != "" {
		lines = append(lines, fmt.Sprintf("  Author:       %s", id.Author))
	}
	if id.Description != "" {
		lines = append(lines, fmt.Sprintf("  %s", id.Description))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  Execution:    %s", ex.Mode))
	lines = append(lines, fmt.Sprintf("  Binary:       %s", ex.Binary))
	lines = append(lines, fmt.Sprintf("  Go:           %s", ex.GoVersion))
	lines = append(lines, fmt.Sprintf("  Platform:     %s", ex.Platform))
	if ex.Revision != "" {
		lines = append(lines, fmt.Sprintf("  Revision:     %s", ex.Revision))
	}

	for _, t := range i.Tools {
		lines = append(lines, toolLine(t))
	}
	return lines
}

// toolLine formats one detection result the way the summary shows it.
func toolLine(t tools.Result) string {
	switch {
	case t.Status == tools.StatusAvailable:
		return fmt.Sprintf("  %s:  v%s  (%s)", t.Name, t.Version, t.Path)
	case t.Path != "":
		return fmt.Sprintf("  %s:  found but version unavailable  (%s)", t.Name, t.Path)
	default:
		return fmt.Sprintf("  %s:  not found", t.Name)
	}
}
