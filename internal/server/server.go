// Package server assembles the HTTP stack: gin engine, middleware, routes,
// Swagger UI and CORS, behind an http.Server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "gamelibrary/backend/docs" // registers the OpenAPI document
	"gamelibrary/backend/internal/config"
	"gamelibrary/backend/internal/handler"
	"gamelibrary/backend/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the gin engine with every route mounted.
func NewRouter(cfg *config.Config, h *handler.Handler, log *zap.Logger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h.Register(router)
	return router
}

// NewHandler wraps the router with CORS. Only reads are exposed.
func NewHandler(cfg *config.Config, router http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(router)
}

// Server is the HTTP server of the API.
type Server struct {
	http *http.Server
	log  *zap.Logger
}

// New creates a Server listening on cfg.Addr().
func New(cfg *config.Config, h *handler.Handler, log *zap.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           NewHandler(cfg, NewRouter(cfg, h, log)),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening",
			zap.String("addr", s.http.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", s.http.Addr)))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
