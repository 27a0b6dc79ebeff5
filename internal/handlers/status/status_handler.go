// internal/handlers/status/status_handler.go
package status

import (
	"context"
	"net/http"

	"hr-identity-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Store is the slice of storage the status endpoints need.
type Store interface {
	Ping(ctx context.Context) error
	CountRoles(ctx context.Context) (int64, error)
}

type StatusHandler struct {
	store  Store
	logger *zap.Logger
}

func NewStatusHandler(store Store, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{store: store, logger: logger}
}

// Health reports liveness and database connectivity
func (h *StatusHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		response.Error(c, http.StatusServiceUnavailable, "database unreachable", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status reports the number of defined roles as a storage probe
func (h *StatusHandler) Status(c *gin.Context) {
	count, err := h.store.CountRoles(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to count roles", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "status query failed", nil)
		return
	}

	response.Success(c, http.StatusOK, "status", gin.H{"role_count": count})
}
