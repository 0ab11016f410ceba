package tools

// Status classifies a detection outcome.
type Status string

const (
	// StatusAvailable means the tool resolved and reported a version.
	StatusAvailable Status = "available"
	// StatusNotFound means the tool could not be resolved at all.
	StatusNotFound Status = "not_found"
	// StatusError means the tool resolved but the version probe failed
	// (non-zero exit, timeout, or launch failure).
	StatusError Status = "error"
)

// Result is the immutable outcome of detecting a single tool.
// Invariants: StatusNotFound implies Path and Version are empty;
// StatusAvailable implies Path is set and Version holds the first stdout
// line (possibly blank); StatusError implies Path is set and Version is
// empty.
type Result struct {
	Name    string `json:"name"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Status  Status `json:"status"`
}

// Available reports whether the tool resolved and answered the version probe.
func (r Result) Available() bool { return r.Status == StatusAvailable }

// Found reports whether the tool resolved to an executable path at all.
func (r Result) Found() bool { return r.Path != "" }
