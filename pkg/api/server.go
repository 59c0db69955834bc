// @title           CADAgent API
// @version         1.0
// @description     Natural-language CAD modeling API.
// @host            localhost:8080
// @BasePath        /

package api

import (
	"log/slog"
	"net/http"

	"github.com/cadagent-org/cadagent/pkg/api/middleware"
	"github.com/cadagent-org/cadagent/pkg/api/service"
	"github.com/gin-gonic/gin"
)

// Config defines the HTTP server settings.
type Config struct {
	Enable  bool   `yaml:"enable" envconfig:"HTTP_ENABLE"`
	Addr    string `yaml:"addr" envconfig:"HTTP_ADDR"`
	APIKey  string `yaml:"api_key" envconfig:"HTTP_API_KEY"`
	DevMode bool   // Enables Swagger UI
}

// Server hosts the Gin engine and manages API resources.
type Server struct {
	engine  *gin.Engine
	config  Config
	chatSvc *service.ChatService
	log     *slog.Logger
}

// NewServer constructs the HTTP API server.
func NewServer(cfg Config, chatSvc *service.ChatService, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logger(log))

	srv := &Server{
		engine:  engine,
		config:  cfg,
		chatSvc: chatSvc,
		log:     log,
	}

	srv.setupRoutes()

	return srv
}

// Engine returns the underlying Gin engine (for http.Server).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr returns the configured address.
func (s *Server) Addr() string {
	return s.config.Addr
}

// Run starts the HTTP server on the configured address.
func (s *Server) Run() error {
	s.log.Info("http api listening", "addr", s.config.Addr)
	return http.ListenAndServe(s.config.Addr, s.engine)
}
