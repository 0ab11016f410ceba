package tools

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// runVersion invokes path with the version flag and returns captured stdout.
// stderr is captured separately and discarded; only stdout carries the
// version text. A deadline exceeding timeout kills the child and reports an
// error.
func runVersion(path, flag string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, flag)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Avoid color escapes polluting the first line
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	// Don't let grandchildren holding the output pipes stall Wait after the
	// deadline killed the child.
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", ctx.Err()
	}
	if err != nil {
		return "", err
	}
	return stdout.String(), nil
}

// firstLine trims the output and returns its first line.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
}
