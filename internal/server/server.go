package server

import (
	"log/slog"
	"net/http"

	"github.com/alkime/creatoros/internal/config"
	"github.com/alkime/creatoros/internal/content"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	logger  *slog.Logger
	router  *gin.Engine
	service *content.Service
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger, svc *content.Service) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		config:  cfg,
		logger:  logger,
		router:  router,
		service: svc,
	}

	setupSecurityMiddleware(router, cfg, logger)
	setupCORSMiddleware(router, cfg, logger)
	router.Use(requestMetrics(logger))
	if cfg.StaticDir != "" {
		setupStaticFiles(router, cfg.StaticDir, logger)
	}
	server.setupRoutes()

	return server
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	if s.config.MetricsEnabled {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := s.router.Group("/api")
	{
		api.GET("/", s.handleRoot)

		api.POST("/users", s.handleUpsertProfile)
		api.GET("/users/:id", s.handleGetProfile)

		api.POST("/content/generate", s.handleGenerateContent)
		api.GET("/content/history/:id", s.handleContentHistory)

		api.POST("/daily-plan/generate", s.handleGeneratePlan)
		api.GET("/daily-plan/today/:id", s.handleTodayPlan)
	}
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "creatoros",
	})
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Creator Operating System API"})
}
