// Package server provides the HTTP API for playlist summarization.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/ytlength/ytlength/internal/app/summary"
	"github.com/ytlength/ytlength/internal/domain/playlist"
	"github.com/ytlength/ytlength/internal/infra/config"
)

// Summarizer produces a playlist summary for one request.
type Summarizer interface {
	Summarize(ctx context.Context, req summary.Request) (*playlist.Summary, error)
}

// Server handles HTTP requests for playlist summarization.
type Server struct {
	cfg        *config.Config
	router     *gin.Engine
	summarizer Summarizer
}

// New creates a new HTTP server instance.
func New(cfg *config.Config, summarizer Summarizer) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.HandleMethodNotAllowed = true

	s := &Server{
		cfg:        cfg,
		router:     router,
		summarizer: summarizer,
	}
	s.setupRoutes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures middleware and routes.
func (s *Server) setupRoutes() {
	s.router.Use(requestID(), requestLogger(), cors())

	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api")
	{
		api.POST("/playlist", s.summarizePlaylist)
	}
}

// healthCheck handles health check requests.
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ytlength",
	})
}

// requestID assigns each request an id, exposed as X-Request-ID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger logs one line per completed request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		zlog.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// cors allows the browser front end to call the API from any origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,OPTIONS,PATCH,DELETE,POST,PUT")
		c.Header("Access-Control-Allow-Headers", "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
