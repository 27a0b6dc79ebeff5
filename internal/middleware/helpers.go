// internal/middleware/helpers.go
package middleware

import (
	"hr-identity-service/internal/pkg/sessions"

	"github.com/gin-gonic/gin"
)

// GetAuthToken gets the extracted bearer token from context
func GetAuthToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextTokenKey)
	if !exists {
		return "", false
	}

	token, ok := value.(string)
	return token, ok
}

// GetSession gets the resolved session from context
func GetSession(c *gin.Context) (*sessions.Session, bool) {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil, false
	}

	sess, ok := value.(*sessions.Session)
	return sess, ok
}

// MustGetSession gets the resolved session from context or panics. Only for
// handlers behind RequireSession.
func MustGetSession(c *gin.Context) *sessions.Session {
	sess, ok := GetSession(c)
	if !ok {
		panic("auth_session not found in context")
	}
	return sess
}

// IsAuthenticated checks if the request carries a resolved session
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get(ContextSessionKey)
	return exists
}
