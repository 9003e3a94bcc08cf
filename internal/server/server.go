package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/planarkit/planarkit/internal/config"
	"github.com/planarkit/planarkit/internal/http"
	"github.com/planarkit/planarkit/internal/logging"
	"github.com/planarkit/planarkit/internal/middleware"
	"github.com/planarkit/planarkit/internal/monitoring"
	"github.com/planarkit/planarkit/internal/providers"
	"github.com/planarkit/planarkit/internal/service"
	"github.com/planarkit/planarkit/vec2"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
}

// New creates a new server instance
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	// The configured backend becomes the process default for every vector
	// constructed without an explicit system.
	configureDefaultSystem(cfg.Vector, logger)

	registry := service.NewRegistry()
	if err := registry.Register(providers.NewVector()); err != nil {
		return nil, err
	}
	stats := registry.Stats()
	logger.Info("registered service providers",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]))

	metrics := monitoring.NewMetrics()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.Origins))
	router.Use(middleware.RateLimit(cfg.Server.RateRPS, cfg.Server.RateBurst))
	router.Use(monitoring.Middleware(metrics))

	handlers := http.NewHandlers(registry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	return &Server{
		router:   router,
		registry: registry,
		logger:   logger,
	}, nil
}

// Run starts the server
func (s *Server) Run(addr string) error {
	s.logger.Info("starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func configureDefaultSystem(cfg config.VectorConfig, logger *logging.Logger) {
	switch cfg.System {
	case vec2.NamePrecise:
		vec2.SetDefault(vec2.NewPrecise(cfg.Digits))
	default:
		sys, ok := vec2.LookupSystem(cfg.System)
		if !ok {
			logger.Warn("unknown operator system, keeping default",
				zap.String("system", cfg.System),
				zap.String("default", vec2.Default().Name()))
			return
		}
		vec2.SetDefault(sys)
	}
	logger.Info("default operator system configured",
		zap.String("system", vec2.Default().Name()))
}
