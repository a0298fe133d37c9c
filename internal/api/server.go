package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server hosts the dashboard JSON API.
type Server struct {
	router *gin.Engine
	srv    *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(port string, handlers *Handlers) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.GET("/health", handlers.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/prices", handlers.GetPrices)
		v1.GET("/growth", handlers.GetGrowth)
		v1.GET("/fundamentals", handlers.GetFundamentals)
		v1.GET("/membership", handlers.GetMembership)
		v1.GET("/peers", handlers.GetPeers)
		v1.GET("/compare", handlers.Compare)
		v1.POST("/corpus/build", handlers.BuildCorpus)
	}

	return &Server{
		router: router,
		srv: &http.Server{
			Addr:    ":" + port,
			Handler: router,
		},
	}
}

// Start begins serving in the background.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	default:
		return nil
	}
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Router exposes the underlying engine, mainly for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
