package server

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"aboutctl/internal/config"
	"aboutctl/internal/system"
)

// watchConfig reloads the tool registry whenever tools.json changes, so a
// running server picks up edits without a restart.
func (s *Server) watchConfig(ctx context.Context) {
	path, err := config.Path()
	if err != nil {
		system.Logger.Warn("config watch unavailable", "err", err)
		return
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		system.Logger.Warn("config watch unavailable", "err", err)
		return
	}
	defer w.Close()

	// Watch the directory: the file itself may not exist yet, and editors
	// often replace it via rename.
	if err := w.Add(filepath.Dir(path)); err != nil {
		system.Logger.Warn("config watch unavailable", "err", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Name != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			reg, err := config.BuildRegistry()
			if err != nil {
				system.Logger.Warn("tool config reload failed", "err", err)
				continue
			}
			s.setRegistry(reg)
			system.Logger.Info("tool config reloaded", "tools", reg.Len())
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			system.Logger.Warn("config watch error", "err", err)
		}
	}
}
