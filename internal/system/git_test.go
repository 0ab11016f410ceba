package system

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"testing"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	base := []string{
		"-C", dir,
		"-c", "user.name=test",
		"-c", "user.email=test@example.com",
		"-c", "commit.gpgsign=false",
	}
	cmd := exec.Command("git", append(base, args...)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func TestGetGitInfo_Repo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	runGit(t, dir, "init")
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	runGit(t, dir, "add", "a.txt")
	runGit(t, dir, "commit", "-m", "initial")

	gi, err := GetGitInfo(context.Background(), dir)
	if err != nil {
		t.Fatalf("GetGitInfo error: %v", err)
	}
	if !gi.InRepo {
		t.Fatalf("InRepo = false in a fresh repo")
	}
	if gi.ShortSHA == "" {
		t.Fatalf("ShortSHA empty")
	}
	if !dateRe.MatchString(gi.CommitDate) {
		t.Fatalf("CommitDate = %q, want YYYY-MM-DD", gi.CommitDate)
	}
	if gi.Dirty {
		t.Fatalf("clean worktree reported dirty")
	}

	// Untracked files count as dirty.
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	gi, err = GetGitInfo(context.Background(), dir)
	if err != nil {
		t.Fatalf("GetGitInfo error: %v", err)
	}
	if !gi.Dirty {
		t.Fatalf("untracked file not reported dirty")
	}
}

func TestGetGitInfo_NotARepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	gi, err := GetGitInfo(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("GetGitInfo error: %v", err)
	}
	if gi.InRepo || gi.ShortSHA != "" || gi.CommitDate != "" {
		t.Fatalf("non-repo dir produced repo info: %+v", gi)
	}
}
