package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aboutctl/internal/tools"
)

// Entry is the on-disk shape of one tool spec in tools.json. The timeout is
// stored in seconds so the file stays hand-editable.
type Entry struct {
	Name                  string   `json:"name"`
	Command               string   `json:"command"`
	VersionFlag           string   `json:"versionFlag,omitempty"`
	FallbackPaths         []string `json:"fallbackPaths,omitempty"`
	VersionTimeoutSeconds float64  `json:"versionTimeoutSeconds,omitempty"`
}

// Spec converts the entry to a detection spec.
func (e Entry) Spec() tools.Spec {
	return tools.Spec{
		Name:           strings.TrimSpace(e.Name),
		Command:        strings.TrimSpace(e.Command),
		VersionFlag:    strings.TrimSpace(e.VersionFlag),
		FallbackPaths:  e.FallbackPaths,
		VersionTimeout: time.Duration(e.VersionTimeoutSeconds * float64(time.Second)),
	}
}

// EntryFromSpec converts a detection spec to its on-disk shape.
func EntryFromSpec(s tools.Spec) Entry {
	return Entry{
		Name:                  s.Name,
		Command:               s.Command,
		VersionFlag:           s.VersionFlag,
		FallbackPaths:         s.FallbackPaths,
		VersionTimeoutSeconds: s.VersionTimeout.Seconds(),
	}
}

// Path returns the tools.json location under the config dir.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tools.json"), nil
}

// Defaults is the tool set shipped when no tools.json exists yet: common
// optional dependencies of desktop apps.
func Defaults() []Entry {
	return []Entry{
		{
			Name:        "ExifTool",
			Command:     "exiftool",
			VersionFlag: "-ver",
			FallbackPaths: []string{
				"/usr/local/bin/exiftool",
				"/opt/homebrew/bin/exiftool",
			},
		},
		{Name: "FFmpeg", Command: "ffmpeg", VersionFlag: "-version"},
		{Name: "Git", Command: "git"},
	}
}

// Load reads tools.json. A missing file yields the default entries without
// error; malformed entries (blank name or command) are dropped.
func Load() ([]Entry, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, err
	}
	var arr []Entry
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, err
	}
	return normalize(arr), nil
}

// Save writes the entries to tools.json, creating the directory if needed.
// File order is preserved; it is the registration order used for detection.
func Save(entries []Entry) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(normalize(entries), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// Add inserts or replaces an entry by name and persists the store.
// Reports whether an existing entry was replaced.
func Add(e Entry) (replaced bool, err error) {
	entries, err := Load()
	if err != nil {
		return false, err
	}
	for i := range entries {
		if entries[i].Name == e.Name {
			entries[i] = e
			return true, Save(entries)
		}
	}
	return false, Save(append(entries, e))
}

// Remove deletes entries by name and persists the store. Names that were
// not present are reported in missing.
func Remove(names []string) (removed, missing []string, err error) {
	entries, err := Load()
	if err != nil {
		return nil, nil, err
	}
	keep := entries[:0]
	byName := make(map[string]bool, len(entries))
	for _, e := range entries {
		byName[e.Name] = true
	}
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if byName[n] {
			drop[n] = true
			removed = append(removed, n)
		} else {
			missing = append(missing, n)
		}
	}
	for _, e := range entries {
		if !drop[e.Name] {
			keep = append(keep, e)
		}
	}
	if err := Save(keep); err != nil {
		return nil, nil, err
	}
	return removed, missing, nil
}

// BuildRegistry loads the store and registers every entry in file order.
func BuildRegistry() (*tools.Registry, error) {
	entries, err := Load()
	if err != nil {
		return nil, err
	}
	reg := tools.NewRegistry()
	for _, e := range entries {
		reg.Register(e.Spec())
	}
	return reg, nil
}

// normalize trims fields and drops entries without a name or command.
func normalize(in []Entry) []Entry {
	out := make([]Entry, 0, len(in))
	for _, e := range in {
		e.Name = strings.TrimSpace(e.Name)
		e.Command = strings.TrimSpace(e.Command)
		if e.Name == "" || e.Command == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
