package system

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

// Execution describes the runtime environment of the current process.
// It is detected fresh on every call and never cached, so changes to the
// environment are always reflected.
type Execution struct {
	// Binary is the resolved path of the running executable.
	Binary string `json:"binary"`
	// GoVersion is the toolchain version the binary was built with.
	GoVersion string `json:"goVersion"`
	// Platform is the GOOS/GOARCH pair, e.g. "linux/amd64".
	Platform string `json:"platform"`
	// Mode distinguishes an installed release binary from a transient
	// `go run` build.
	Mode string `json:"mode"`
	// Module is the main module path from build info, if available.
	Module string `json:"module,omitempty"`
	// Revision and CommitTime come from embedded VCS build settings.
	Revision   string `json:"revision,omitempty"`
	CommitTime string `json:"commitTime,omitempty"`
	// Dirty is true when the binary was built from a modified worktree.
	Dirty bool `json:"dirty,omitempty"`
}

// Execution mode labels.
const (
	ModeRelease = "release binary"
	ModeGoRun   = "go run (dev)"
)

// DetectExecution inspects the current process and returns its runtime
// environment. Best-effort: fields that cannot be determined stay empty.
func DetectExecution() Execution {
	ex := Execution{
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if bin, err := os.Executable(); err == nil {
		if resolved, rerr := filepath.EvalSymlinks(bin); rerr == nil {
			bin = resolved
		}
		ex.Binary = bin
	}
	ex.Mode = ModeRelease
	if isGoRunBinary(ex.Binary) {
		ex.Mode = ModeGoRun
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		ex.Module = bi.Main.Path
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				ex.Revision = s.Value
			case "vcs.time":
				ex.CommitTime = s.Value
			case "vcs.modified":
				ex.Dirty = s.Value == "true"
			}
		}
	}
	return ex
}

// isGoRunBinary reports whether path looks like a transient `go run` build
// living under the go-build cache in the temp directory.
func isGoRunBinary(path string) bool {
	if path == "" {
		return false
	}
	tmp := os.TempDir()
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil {
		tmp = resolved
	}
	return strings.HasPrefix(path, tmp) && strings.Contains(path, "go-build")
}
