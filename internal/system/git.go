package system

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// GitInfo holds best-effort repository status for the working directory.
// Used to default the commit date shown in the About report when the host
// application does not supply one.
type GitInfo struct {
	InRepo     bool
	Branch     string
	ShortSHA   string
	CommitDate string // date of HEAD commit, YYYY-MM-DD
	Dirty      bool
}

// GetGitInfo inspects the Git repository at dir and returns basic status.
// Missing git or a non-repo dir yields a zero GitInfo without error.
func GetGitInfo(ctx context.Context, dir string) (GitInfo, error) {
	gi := GitInfo{}

	if _, err := exec.LookPath("git"); err != nil {
		return gi, nil
	}

	// Short timeout per call to avoid hanging on slow filesystems
	run := func(args ...string) (string, error) {
		cctx, cancel := context.WithTimeout(ctx, 800*time.Millisecond)
		defer cancel()
		full := append([]string{"-C", dir}, args...)
		out, err := exec.CommandContext(cctx, "git", full...).CombinedOutput()
		return strings.TrimSpace(string(out)), err
	}

	if out, err := run("rev-parse", "--is-inside-work-tree"); err != nil || out != "true" {
		return gi, nil
	}
	gi.InRepo = true

	if out, err := run("symbolic-ref", "--quiet", "--short", "HEAD"); err == nil {
		gi.Branch = out
	} else if out, err := run("rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		// detached head fallback
		gi.Branch = out
	}

	if out, err := run("rev-parse", "--short", "HEAD"); err == nil {
		gi.ShortSHA = out
	}
	if out, err := run("log", "-1", "--format=%cs"); err == nil {
		gi.CommitDate = out
	}
	if out, err := run("status", "--porcelain"); err == nil {
		gi.Dirty = out != ""
	}

	return gi, nil
}
