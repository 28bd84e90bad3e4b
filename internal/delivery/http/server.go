package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	post_http "blog-post-service/internal/delivery/http/post"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
)

type Server struct {
	postHTTPService *post_http.PostHTTPService
	server          *http.Server
	address         string
	port            int
	staticDir       string
	log             *logger.Logger
	metrics         metrics.MetricsProvider
}

func NewServer(
	postHTTPService *post_http.PostHTTPService,
	address string,
	port int,
	staticDir string,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *Server {
	return &Server{
		postHTTPService: postHTTPService,
		address:         address,
		port:            port,
		staticDir:       staticDir,
		log:             log,
		metrics:         metrics,
	}
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(s.log))
	router.Use(RequestMetrics(s.metrics))

	s.postHTTPService.RegisterRoutes(router)

	router.NoRoute(StaticFallback(s.staticDir))

	return router
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)

	s.server = &http.Server{
		Addr:         address,
		Handler:      s.buildRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
