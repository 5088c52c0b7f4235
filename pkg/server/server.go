package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sigil-dev/sigil/pkg/vdom"
)

// RootFunc builds the component tree for one connection.
type RootFunc func() *vdom.VNode

// Config configures the Server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// Title is the page title served at "/".
	Title string

	// CheckOrigin decides whether a websocket upgrade is allowed.
	// Defaults to same-origin-only.
	CheckOrigin func(r *http.Request) bool

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// Logger is the server logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// Server serves the demo page, the websocket update stream, and
// Prometheus metrics.
type Server struct {
	config   Config
	root     RootFunc
	logger   *slog.Logger
	metrics  *metrics
	upgrader websocket.Upgrader

	httpServer *http.Server
}

// New creates a Server hosting the tree built by root.
func New(config Config, root RootFunc) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.Title == "" {
		config.Title = "sigil"
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	s := &Server{
		config:  config,
		root:    root,
		logger:  config.Logger,
		metrics: newMetrics(config.Registry),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
	}
	return s
}

// Handler returns the chi router serving "/", "/ws", and "/metrics".
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.config.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexPage(w, s.config.Title)
}
