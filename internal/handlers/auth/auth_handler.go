// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"
	"strconv"

	"hr-identity-service/internal/domain/identity"
	"hr-identity-service/internal/middleware"
	xerrors "hr-identity-service/internal/pkg/errors"
	"hr-identity-service/internal/pkg/response"
	authUsecase "hr-identity-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// ========== Login ==========

// Login authenticates an employee by personnel number and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	personnelNumber, err := strconv.ParseInt(req.PersonnelNumber, 10, 32)
	if err != nil {
		response.ValidationError(c, "invalid personnel number", xerrors.ErrInvalidInput)
		return
	}

	rec, err := h.authService.Login(c.Request.Context(), int32(personnelNumber), req.Password)
	if err != nil {
		h.logger.Warn("login failed",
			zap.String("personnel_nr", req.PersonnelNumber),
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)

		switch {
		// Unknown user and wrong password share one message so callers
		// cannot probe which personnel numbers exist.
		case xerrors.Is(err, xerrors.ErrUserNotFound), xerrors.Is(err, xerrors.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "invalid personnel number or password", xerrors.ErrInvalidCredentials)
		case xerrors.Is(err, xerrors.ErrPasswordExpired):
			response.Error(c, http.StatusUnauthorized, "password expired; contact your administrator", err)
		case xerrors.Is(err, xerrors.ErrAccountDisabled):
			response.Error(c, http.StatusUnauthorized, "account disabled; contact your administrator", err)
		case xerrors.Is(err, xerrors.ErrAccountDismissed):
			response.Error(c, http.StatusUnauthorized, "account dismissed; contact human resources", err)
		default:
			response.Error(c, http.StatusInternalServerError, "login failed", nil)
		}
		return
	}

	payload := rec.Session.Info()
	payload.Token = rec.Token.String()

	response.Success(c, http.StatusOK, "login successful", payload)
}

// ========== Logout ==========

// Logout invalidates the presented session token. Logout always succeeds:
// an unknown or already-invalidated token is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := middleware.GetAuthToken(c); ok {
		h.authService.Logout(token)
	}

	response.Success(c, http.StatusOK, "logout successful", nil)
}

// ========== Authorization info ==========

// Me returns the authorization payload for the current session
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.MustGetSession(c)
	response.Success(c, http.StatusOK, "authorization info", sess.Info())
}
