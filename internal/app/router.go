// internal/app/router.go
package app

import (
	authHandler "hr-identity-service/internal/handlers/auth"
	statusHandler "hr-identity-service/internal/handlers/status"
	"hr-identity-service/internal/middleware"
	"hr-identity-service/internal/pkg/sessions"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler   *authHandler.AuthHandler
	StatusHandler *statusHandler.StatusHandler
	Sessions      *sessions.Directory
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Public Routes ====================
	api.GET("/health", h.StatusHandler.Health)
	api.GET("/status", h.StatusHandler.Status)

	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
		// Logout only needs the extracted token; an invalid or missing
		// token still answers success.
		authPublic.POST("/logout", h.AuthHandler.Logout)
	}

	// ==================== Protected Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(middleware.RequireSession(h.Sessions))
	{
		authProtected.GET("/me", h.AuthHandler.Me)
	}
}
