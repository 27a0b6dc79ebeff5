// internal/pkg/sessions/types.go
package sessions

import (
	"sync"
	"time"

	"hr-identity-service/internal/domain/identity"

	"github.com/google/uuid"
)

// Session is one authenticated employee. A single Session instance is
// shared by pointer between both directory indices and by every request
// that resolved it, so the renewal timestamp carries its own lock.
type Session struct {
	User      identity.User
	Roles     []identity.Role
	Resources []identity.Resource

	mu              sync.RWMutex
	authenticatedAt time.Time
}

// AuthenticatedAt returns the time of the last successful login or renewal.
func (s *Session) AuthenticatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticatedAt
}

func (s *Session) renew(t time.Time) {
	s.mu.Lock()
	s.authenticatedAt = t
	s.mu.Unlock()
}

// Info returns the serializable authorization payload for the session.
func (s *Session) Info() identity.LoginResponse {
	return identity.LoginResponse{
		User:      s.User.Info(),
		Roles:     s.Roles,
		Resources: s.Resources,
	}
}

// Record pairs a session with its token. It is the unit stored in the
// by-personnel-number index and returned to the login path.
type Record struct {
	Token   uuid.UUID
	Session *Session
}
