// internal/app/server.go
package app

import (
	"context"
	"fmt"

	"hr-identity-service/internal/config"
	"hr-identity-service/internal/db"
	authHandler "hr-identity-service/internal/handlers/auth"
	statusHandler "hr-identity-service/internal/handlers/status"
	"hr-identity-service/internal/middleware"
	"hr-identity-service/internal/pkg/credential"
	"hr-identity-service/internal/pkg/sessions"
	"hr-identity-service/internal/repository/postgres"
	authUsecase "hr-identity-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	pool   *pgxpool.Pool
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.Connect(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool
	logger.Info("connected to PostgreSQL")

	// ----- Session Directory -----
	// One directory per process; sessions are in-memory only and are gone
	// after a restart.
	directory := sessions.NewDirectory(s.cfg.SessionTTL)

	// ----- Repositories -----
	userRepo := postgres.NewUserRepository(pool)

	// ----- Services (Usecases) -----
	verifier := credential.NewVerifier()
	authService := authUsecase.NewAuthService(userRepo, verifier, directory, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, logger)
	statusHandlerInst := statusHandler.NewStatusHandler(userRepo, logger)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.TokenExtraction(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:   authHandlerInst,
		StatusHandler: statusHandlerInst,
		Sessions:      directory,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	if s.cfg.TLSEnabled() {
		logger.Info("server listening with TLS", zap.String("addr", s.cfg.HTTPAddr))
		return s.engine.RunTLS(s.cfg.HTTPAddr, s.cfg.TLSCertFile, s.cfg.TLSKeyFile)
	}

	logger.Info("server listening", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown releases server-owned resources.
func (s *Server) Shutdown() {
	if s.pool != nil {
		s.pool.Close()
	}
}
