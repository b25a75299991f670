package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/doseorb/internal/model"
)

// StatusSource is the narrow contract the HTTP API reads from.
type StatusSource interface {
	Latest() (model.IndicatorStatus, time.Time, bool)
	Frames() uint64
}

// Server exposes the live indicator state over HTTP, e.g. for a stream
// overlay or a second screen.
type Server struct {
	addr      string
	source    StatusSource
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server.
func NewServer(addr string, source StatusSource) *Server {
	if addr == "" {
		addr = model.DefaultAPIAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		source: source,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler builds the gin router.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/indicator", s.handleIndicator)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
		"frames": s.source.Frames(),
	})
}

func (s *Server) handleIndicator(c *gin.Context) {
	status, updatedAt, ok := s.source.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no frame rendered yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"indicator":  status,
		"updated_at": updatedAt.UTC().Format(time.RFC3339Nano),
	})
}
