// Package api serves the HTTP surface: submitting investigations, reading
// and cancelling sessions, streaming live events over SSE, health, and
// Prometheus metrics.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rootline-ai/rootline/pkg/database"
	"github.com/rootline-ai/rootline/pkg/queue"
	"github.com/rootline-ai/rootline/pkg/services"
	"github.com/rootline-ai/rootline/pkg/session"
)

// Deps are the server's collaborators. Manager and Pool are required;
// Sessions and DB are nil when persistence is disabled, Registry is nil
// when metrics are off.
type Deps struct {
	Manager  *session.Manager
	Pool     *queue.Pool
	Sessions *services.SessionService
	DB       *database.Client
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// Server is the HTTP API server.
type Server struct {
	deps   Deps
	logger *slog.Logger
	http   *http.Server
}

// NewServer wires the server. Panics when a required dependency is nil.
func NewServer(deps Deps) *Server {
	if deps.Manager == nil {
		panic("api: session manager is required")
	}
	if deps.Pool == nil {
		panic("api: worker pool is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{deps: deps, logger: logger.With("component", "api")}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger), securityHeaders())

	router.GET("/healthz", s.health)
	if s.deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
			s.deps.Registry, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/investigations", s.createInvestigation)
		v1.GET("/investigations", s.listInvestigations)
		v1.GET("/investigations/:id", s.getInvestigation)
		v1.POST("/investigations/:id/cancel", s.cancelInvestigation)
		v1.GET("/investigations/:id/events", s.streamEvents)
	}
	return router
}

// Start begins serving on addr. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("http server listening", "addr", addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
