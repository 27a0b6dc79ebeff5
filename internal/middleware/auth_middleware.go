// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	xerrors "hr-identity-service/internal/pkg/errors"
	"hr-identity-service/internal/pkg/response"
	"hr-identity-service/internal/pkg/sessions"

	"github.com/gin-gonic/gin"
)

// Context keys set by the pipeline stages.
const (
	ContextTokenKey   = "auth_token"
	ContextSessionKey = "auth_session"
)

// authScheme is the only accepted Authorization scheme.
const authScheme = "Token"

// TokenExtraction is the first pipeline stage, installed globally. Requests
// without an Authorization header pass through anonymously; requests with
// one must present `Token <value>` exactly, and the value is parked in the
// request context for RequireSession.
func TokenExtraction() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		segments := strings.Split(header, " ")
		if len(segments) < 2 || segments[0] != authScheme || segments[1] == "" {
			response.Error(c, http.StatusBadRequest, "invalid authorization info", xerrors.ErrMalformedAuthHeader)
			return
		}

		c.Set(ContextTokenKey, segments[1])
		c.Next()
	}
}

// RequireSession is the second pipeline stage, installed on protected
// routes only. It resolves the extracted token into a live session and
// attaches it to the request context; anything short of a valid, unexpired
// session is rejected as unauthorized.
func RequireSession(directory *sessions.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := GetAuthToken(c)
		if !ok {
			response.Unauthorized(c, "you are not authenticated")
			return
		}

		sess, err := directory.Resolve(token)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrSessionExpired) {
				response.Unauthorized(c, "session expired")
				return
			}
			response.Unauthorized(c, "you are not authenticated; invalid token")
			return
		}

		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}
