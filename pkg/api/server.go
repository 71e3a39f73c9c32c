package api

import (
	"log/slog"

	echo "github.com/labstack/echo/v5"

	"github.com/lecternhq/lectern/pkg/assist"
	"github.com/lecternhq/lectern/pkg/auth"
	"github.com/lecternhq/lectern/pkg/config"
	"github.com/lecternhq/lectern/pkg/database"
	"github.com/lecternhq/lectern/pkg/events"
	"github.com/lecternhq/lectern/pkg/services"
)

// Server holds the HTTP layer's dependencies.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	curriculums *services.CurriculumService
	chatHistory *services.ChatHistoryService
	assistant   *assist.Service
	hub         *events.Hub
	verifier    auth.TokenVerifier
	warnings    *services.SystemWarningsService
	logger      *slog.Logger
}

// SetWarningsService wires the transient warnings store surfaced by /health.
func (s *Server) SetWarningsService(warnings *services.SystemWarningsService) {
	s.warnings = warnings
}

// NewServer creates the API server.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	curriculums *services.CurriculumService,
	chatHistory *services.ChatHistoryService,
	assistSvc *assist.Service,
	hub *events.Hub,
	verifier auth.TokenVerifier,
	logger *slog.Logger,
) *Server {
	return &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		curriculums: curriculums,
		chatHistory: chatHistory,
		assistant:   assistSvc,
		hub:         hub,
		verifier:    verifier,
		logger:      logger.With("component", "api"),
	}
}

// Handler builds the echo instance with all middleware and routes mounted.
func (s *Server) Handler() *echo.Echo {
	e := echo.New()

	e.Use(
		recoverPanics(),
		s.requestLogger(),
		securityHeaders(),
		corsMiddleware(s.cfg.AllowedOrigins),
		s.errorEnvelope(),
	)

	// Unauthenticated surface.
	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)
	e.GET("/api/v1/shared/:id", s.getSharedCurriculumHandler)

	// Curricula.
	e.GET("/api/v1/curricula", s.requireAuth(s.listCurriculaHandler))
	e.POST("/api/v1/curricula", s.requireAuth(s.createCurriculumHandler))
	e.GET("/api/v1/curricula/:id", s.requireAuth(s.getCurriculumHandler))
	e.PUT("/api/v1/curricula/:id", s.requireAuth(s.updateCurriculumHandler))
	e.DELETE("/api/v1/curricula/:id", s.requireAuth(s.deleteCurriculumHandler))
	e.POST("/api/v1/curricula/:id/duplicate", s.requireAuth(s.duplicateCurriculumHandler))
	e.GET("/api/v1/curricula/:id/versions", s.requireAuth(s.listVersionsHandler))
	e.POST("/api/v1/curricula/:id/versions/:number/restore", s.requireAuth(s.restoreVersionHandler))

	// Per-curriculum assistant chat history.
	e.GET("/api/v1/curricula/:id/chat", s.requireAuth(s.chatHistoryHandler))
	e.POST("/api/v1/curricula/:id/chat", s.requireAuth(s.addChatMessageHandler))
	e.DELETE("/api/v1/curricula/:id/chat", s.requireAuth(s.clearChatHandler))

	// Assistant.
	e.POST("/api/v1/assist/chat", s.requireAuth(s.assistChatHandler))
	e.POST("/api/v1/assist/stream", s.requireAuth(s.assistStreamHandler))
	e.POST("/api/v1/assist/enhance", s.requireAuth(s.assistEnhanceHandler))
	e.POST("/api/v1/assist/questions", s.requireAuth(s.assistQuestionsHandler))

	return e
}
