package api

import (
	"github.com/cadagent-org/cadagent/pkg/api/handler"
	"github.com/cadagent-org/cadagent/pkg/api/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health (no auth required)
	s.engine.GET("/health", handler.Health)

	// API v1 group
	v1 := s.engine.Group("/api/v1")
	v1.Use(middleware.Auth(s.config.APIKey))

	// Chat handlers
	chatHandler := handler.NewChatHandler(s.chatSvc)
	v1.POST("/ask", chatHandler.Ask)
	v1.POST("/command/execute", chatHandler.Execute)

	// Swagger UI (only in DevMode)
	if s.config.DevMode {
		s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.log.Info("swagger ui enabled", "path", "/swagger/index.html")
	}

	// K8s health probe
	s.engine.GET("/healthz", handler.Health)
}
