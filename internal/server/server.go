package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"aboutctl/internal/appinfo"
	"aboutctl/internal/config"
	"aboutctl/internal/system"
	"aboutctl/internal/tools"
	appver "aboutctl/internal/version"
)

// Server exposes the application snapshot over HTTP. Detection runs fresh on
// every request; only the tool spec registry is held in memory, reloaded
// when tools.json changes.
type Server struct {
	Addr     string
	Identity appinfo.Identity

	mu  sync.RWMutex
	reg *tools.Registry
}

// New builds a server with the tool registry loaded from the config store.
func New(addr string, identity appinfo.Identity) (*Server, error) {
	reg, err := config.BuildRegistry()
	if err != nil {
		return nil, err
	}
	return &Server{Addr: addr, Identity: identity, reg: reg}, nil
}

// registry returns the current registry snapshot.
func (s *Server) registry() *tools.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg
}

// setRegistry swaps in a freshly built registry. Registration is not
// concurrency-safe, so reloads replace the whole registry instead of
// mutating the live one.
func (s *Server) setRegistry(reg *tools.Registry) {
	s.mu.Lock()
	s.reg = reg
	s.mu.Unlock()
}

// Start serves the API until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	r := s.router()

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	go s.watchConfig(ctx)

	system.Logger.Info("about server listening", "addr", s.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.GET("/info", s.infoHandler)
	api.GET("/tools", s.toolsHandler)
	api.GET("/tools/:name", s.toolHandler)
	return r
}

// infoHandler returns the full snapshot: identity, execution, tool results.
func (s *Server) infoHandler(c *gin.Context) {
	info := appinfo.Gather(s.Identity, s.registry())
	c.JSON(http.StatusOK, info)
}

// toolsHandler returns detection results only, in registration order.
func (s *Server) toolsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry().DetectAll())
}

// toolHandler detects a single registered tool; unknown names are 404.
func (s *Server) toolHandler(c *gin.Context) {
	name := c.Param("name")
	res, err := s.registry().Detect(name)
	if err != nil {
		if errors.Is(err, tools.ErrNotRegistered) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
