package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"

	"aboutctl/internal/appinfo"
	"aboutctl/internal/testutil"
	"aboutctl/internal/tools"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmp := t.TempDir()
	t.Cleanup(testutil.WithEnv(t, "XDG_CONFIG_HOME", tmp))
	t.Cleanup(testutil.WithEnv(t, "HOME", tmp))

	reg := tools.NewRegistry()
	return &Server{
		Addr:     "127.0.0.1:0",
		Identity: appinfo.Identity{Name: "Test App", Version: "1.0"},
		reg:      reg,
	}
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}

	rec = get(t, s, "/api/version")
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("version body: %v", err)
	}
	if body["version"] == "" {
		t.Fatalf("empty version")
	}
}

func TestToolEndpoints(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fixtures require a POSIX shell")
	}
	s := newTestServer(t)

	bin := t.TempDir()
	script := filepath.Join(bin, "fake")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho 7.7\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	t.Cleanup(testutil.WithEnv(t, "PATH", bin))

	s.reg.Register(tools.Spec{Name: "Fake", Command: "fake"})
	s.reg.Register(tools.Spec{Name: "Gone", Command: "missing_xyz"})

	rec := get(t, s, "/api/tools")
	var results []tools.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("tools body: %v", err)
	}
	if len(results) != 2 || results[0].Name != "Fake" || results[0].Version != "7.7" {
		t.Fatalf("unexpected results: %+v", results)
	}

	rec = get(t, s, "/api/tools/Gone")
	var one tools.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &one); err != nil {
		t.Fatalf("tool body: %v", err)
	}
	if rec.Code != http.StatusOK || one.Status != tools.StatusNotFound {
		t.Fatalf("single tool: code=%d result=%+v", rec.Code, one)
	}

	rec = get(t, s, "/api/tools/Unknown")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown tool = %d, want 404", rec.Code)
	}
}

func TestInfoEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/info")
	if rec.Code != http.StatusOK {
		t.Fatalf("info = %d", rec.Code)
	}
	var info appinfo.Info
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("info body: %v", err)
	}
	if info.Identity.Name != "Test App" {
		t.Fatalf("identity not served: %+v", info.Identity)
	}
	if info.Execution.GoVersion == "" {
		t.Fatalf("execution not detected")
	}
}
