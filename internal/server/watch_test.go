package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"aboutctl/internal/appinfo"
	"aboutctl/internal/config"
	"aboutctl/internal/testutil"
	"aboutctl/internal/tools"
)

func TestSetRegistry_Swap(t *testing.T) {
	s := &Server{reg: tools.NewRegistry()}

	fresh := tools.NewRegistry()
	fresh.Register(tools.Spec{Name: "X", Command: "x"})
	s.setRegistry(fresh)

	names := s.registry().Names()
	if len(names) != 1 || names[0] != "X" {
		t.Fatalf("registry not swapped: %v", names)
	}
}

func TestWatchConfig_ReloadsOnChange(t *testing.T) {
	tmp := t.TempDir()
	t.Cleanup(testutil.WithEnv(t, "XDG_CONFIG_HOME", tmp))
	t.Cleanup(testutil.WithEnv(t, "HOME", tmp))

	// The watcher attaches to the config directory, so it must exist first.
	p, err := config.Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}

	s := &Server{
		Identity: appinfo.Identity{Name: "Test App"},
		reg:      tools.NewRegistry(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.watchConfig(ctx)

	// Rewrite tools.json until the registry snapshot reflects it; the loop
	// also absorbs the race with the watcher starting up.
	entries := []config.Entry{{Name: "Fresh", Command: "fresh"}}
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := config.Save(entries); err != nil {
			t.Fatalf("Save error: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
		names := s.registry().Names()
		if len(names) == 1 && names[0] == "Fresh" {
			return
		}
	}
	t.Fatalf("registry never reloaded; names = %v", s.registry().Names())
}
