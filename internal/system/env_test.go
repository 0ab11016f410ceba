package system

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetectExecution_Shape(t *testing.T) {
	ex := DetectExecution()
	if ex.GoVersion == "" {
		t.Fatalf("GoVersion empty")
	}
	if !strings.HasPrefix(ex.Platform, runtime.GOOS+"/") {
		t.Fatalf("Platform = %q, want %s/... prefix", ex.Platform, runtime.GOOS)
	}
	if ex.Binary == "" {
		t.Fatalf("Binary empty")
	}
	if ex.Mode != ModeRelease && ex.Mode != ModeGoRun {
		t.Fatalf("Mode = %q, want a known mode label", ex.Mode)
	}
}

func TestDetectExecution_NotCached(t *testing.T) {
	// Two calls must produce independent snapshots with identical static data.
	a := DetectExecution()
	b := DetectExecution()
	if a.GoVersion != b.GoVersion || a.Platform != b.Platform {
		t.Fatalf("static fields diverged: %+v vs %+v", a, b)
	}
}

func TestIsGoRunBinary(t *testing.T) {
	if isGoRunBinary("") {
		t.Fatalf("empty path must not look like go run")
	}
	if isGoRunBinary("/usr/local/bin/aboutctl") {
		t.Fatalf("installed binary misclassified")
	}
}
