// Package server exposes knight searches over a small JSON HTTP API.
//
//	GET /healthz
//	GET /v1/distance?from=r,c&to=r,c
//	GET /v1/path?from=r,c&to=r,c
//	GET /v1/valid?pos=r,c[&size=n]
//	GET /v1/stats
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/knightmoves/internal/service"
	"github.com/katalvlaran/knightmoves/knight"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

const shutdownTimeout = 5 * time.Second

// Querier is the search backend the handlers call.
type Querier interface {
	Distance(start, target knight.Position) (int, error)
	Path(start, target knight.Position) ([]knight.Position, error)
	Valid(p knight.Position, size int) (bool, error)
	Stats() service.Stats
}

// Server wraps a gin engine bound to a Querier.
type Server struct {
	engine *gin.Engine
	q      Querier
	logger *slog.Logger
}

// New builds the router. A nil logger falls back to slog.Default().
func New(q Querier, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{engine: gin.New(), q: q, logger: logger}
	s.engine.Use(gin.Recovery(), requestID(), s.accessLog())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1 := s.engine.Group("/v1")
	v1.GET("/distance", s.handleDistance)
	v1.GET("/path", s.handlePath)
	v1.GET("/valid", s.handleValid)
	v1.GET("/stats", s.handleStats)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	s.logger.Info("http server listening", "addr", addr)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("http server shutting down", "addr", addr)
		return srv.Shutdown(shutdownCtx)
	}
}

// requestID propagates a client-supplied X-Request-ID or assigns a new uuid.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(RequestIDHeader),
		)
	}
}
