// internal/service/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"time"

	"hr-identity-service/internal/domain/identity"
	"hr-identity-service/internal/pkg/credential"
	xerrors "hr-identity-service/internal/pkg/errors"
	"hr-identity-service/internal/pkg/sessions"

	"go.uber.org/zap"
)

// UserStore is the storage collaborator the login path depends on. Failures
// are opaque infrastructure errors and are never retried at this layer.
type UserStore interface {
	FindUserByPersonnelNumber(ctx context.Context, personnelNumber int32) (*identity.User, error)
	ListUserRoles(ctx context.Context, personnelNumber int32) ([]identity.Role, error)
	ListUserResources(ctx context.Context, personnelNumber int32) ([]identity.Resource, error)
}

type AuthService struct {
	store    UserStore
	verifier *credential.Verifier
	sessions *sessions.Directory
	logger   *zap.Logger
}

func NewAuthService(store UserStore, verifier *credential.Verifier, directory *sessions.Directory, logger *zap.Logger) *AuthService {
	return &AuthService{
		store:    store,
		verifier: verifier,
		sessions: directory,
		logger:   logger,
	}
}

// Login authenticates an employee and returns the live session record,
// issuing a fresh session or renewing the existing one.
//
// Eligibility is checked after the password, each check short-circuiting:
// expired password, disabled account, dismissed employee.
func (s *AuthService) Login(ctx context.Context, personnelNumber int32, password string) (sessions.Record, error) {
	user, err := s.store.FindUserByPersonnelNumber(ctx, personnelNumber)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return sessions.Record{}, xerrors.ErrUserNotFound
		}
		return sessions.Record{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.verifier.Verify(user.Salt, user.PasswordHash, password); err != nil {
		return sessions.Record{}, err
	}

	if err := checkEligibility(user); err != nil {
		return sessions.Record{}, err
	}

	roles, err := s.store.ListUserRoles(ctx, personnelNumber)
	if err != nil {
		return sessions.Record{}, fmt.Errorf("failed to load roles: %w", err)
	}

	resources, err := s.store.ListUserResources(ctx, personnelNumber)
	if err != nil {
		return sessions.Record{}, fmt.Errorf("failed to load resources: %w", err)
	}

	rec := s.sessions.IssueOrRenew(*user, roles, resources)

	s.logger.Info("employee authenticated",
		zap.Int32("personnel_nr", personnelNumber),
		zap.String("username", user.Username),
	)

	return rec, nil
}

// Logout invalidates the session behind the token. A token that resolves to
// nothing is a successful no-op: logging out twice never errors.
func (s *AuthService) Logout(token string) {
	if err := s.sessions.Invalidate(token); err != nil {
		s.logger.Debug("logout for inactive token", zap.Error(err))
	}
}

// ProvisionPassword derives the stored hash for a new credential under the
// given base64 salt. Not part of the login path.
func (s *AuthService) ProvisionPassword(password, salt string) (string, error) {
	return s.verifier.Derive(password, salt)
}

func checkEligibility(user *identity.User) error {
	// Expiration is date-granular: a password expiring today is still valid.
	today := truncateToDate(time.Now())
	if user.PasswordExpiresAt.Before(today) {
		return xerrors.ErrPasswordExpired
	}

	if user.AccountDisabled {
		return xerrors.ErrAccountDisabled
	}

	if user.DismissedAt.Valid {
		return xerrors.ErrAccountDismissed
	}

	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
