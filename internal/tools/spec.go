package tools

import "time"

// Default probe settings applied when a Spec leaves them zero.
const (
	DefaultVersionFlag    = "--version"
	DefaultVersionTimeout = 5 * time.Second
)

// Spec describes one external CLI tool to detect (e.g. ExifTool, ffmpeg).
// Specs are immutable once registered; detection never modifies them.
type Spec struct {
	// Name is the human-readable display name and the registry key.
	Name string `json:"name"`
	// Command is the executable name resolved against PATH.
	Command string `json:"command"`
	// VersionFlag is the single argument that makes the tool print its
	// version. Defaults to "--version".
	VersionFlag string `json:"versionFlag,omitempty"`
	// FallbackPaths are absolute paths to the executable itself, probed in
	// order when PATH resolution fails.
	FallbackPaths []string `json:"fallbackPaths,omitempty"`
	// VersionTimeout bounds the version invocation. Defaults to 5s.
	VersionTimeout time.Duration `json:"versionTimeout,omitempty"`
}

// withDefaults returns a copy with zero-valued probe settings filled in.
func (s Spec) withDefaults() Spec {
	if s.VersionFlag == "" {
		s.VersionFlag = DefaultVersionFlag
	}
	if s.VersionTimeout <= 0 {
		s.VersionTimeout = DefaultVersionTimeout
	}
	return s
}
