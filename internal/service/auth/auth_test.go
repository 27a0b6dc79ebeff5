package auth

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"hr-identity-service/internal/domain/identity"
	"hr-identity-service/internal/pkg/credential"
	xerrors "hr-identity-service/internal/pkg/errors"
	"hr-identity-service/internal/pkg/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSalt     = "c2FsdC1zYWx0LXNhbHQtc2FsdA=="
	testPassword = "parola-secreta"
)

type fakeStore struct {
	users     map[int32]identity.User
	roles     []identity.Role
	resources []identity.Resource
	err       error
}

func (f *fakeStore) FindUserByPersonnelNumber(_ context.Context, personnelNumber int32) (*identity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[personnelNumber]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return &user, nil
}

func (f *fakeStore) ListUserRoles(_ context.Context, _ int32) ([]identity.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roles, nil
}

func (f *fakeStore) ListUserResources(_ context.Context, _ int32) ([]identity.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resources, nil
}

func newTestService(t *testing.T, mutate func(*identity.User)) (*AuthService, *fakeStore) {
	t.Helper()

	verifier := credential.NewVerifier()
	hash, err := verifier.Derive(testPassword, testSalt)
	require.NoError(t, err)

	user := identity.User{
		PersonnelNumber:   1001,
		Salt:              testSalt,
		PasswordHash:      hash,
		PasswordExpiresAt: time.Now().AddDate(1, 0, 0),
		Username:          "ion.popescu",
		Email:             sql.NullString{String: "ion.popescu@example.com", Valid: true},
	}
	if mutate != nil {
		mutate(&user)
	}

	store := &fakeStore{
		users:     map[int32]identity.User{user.PersonnelNumber: user},
		roles:     []identity.Role{{ID: 1, Name: "accounting"}},
		resources: []identity.Resource{{ID: 7, Name: "payroll", Writable: true}},
	}

	svc := NewAuthService(store, verifier, sessions.NewDirectory(sessions.DefaultTTL), zap.NewNop())
	return svc, store
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newTestService(t, nil)

	rec, err := svc.Login(context.Background(), 1001, testPassword)
	require.NoError(t, err)
	require.NotNil(t, rec.Session)
	require.Equal(t, int32(1001), rec.Session.User.PersonnelNumber)
	require.Len(t, rec.Session.Roles, 1)
	require.Len(t, rec.Session.Resources, 1)
	require.WithinDuration(t, time.Now(), rec.Session.AuthenticatedAt(), time.Second)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Login(context.Background(), 9999, testPassword)
	require.ErrorIs(t, err, xerrors.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Login(context.Background(), 1001, "gresita")
	require.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginExpiredPassword(t *testing.T) {
	svc, _ := newTestService(t, func(u *identity.User) {
		u.PasswordExpiresAt = time.Now().AddDate(0, 0, -1)
	})

	_, err := svc.Login(context.Background(), 1001, testPassword)
	require.ErrorIs(t, err, xerrors.ErrPasswordExpired)
}

func TestLoginPasswordExpiringTodayStillValid(t *testing.T) {
	svc, _ := newTestService(t, func(u *identity.User) {
		u.PasswordExpiresAt = time.Now()
	})

	_, err := svc.Login(context.Background(), 1001, testPassword)
	require.NoError(t, err)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, _ := newTestService(t, func(u *identity.User) {
		u.AccountDisabled = true
	})

	_, err := svc.Login(context.Background(), 1001, testPassword)
	require.ErrorIs(t, err, xerrors.ErrAccountDisabled)
}

func TestLoginDismissedAccount(t *testing.T) {
	svc, _ := newTestService(t, func(u *identity.User) {
		u.DismissedAt = sql.NullTime{Time: time.Now().AddDate(0, -1, 0), Valid: true}
	})

	_, err := svc.Login(context.Background(), 1001, testPassword)
	require.ErrorIs(t, err, xerrors.ErrAccountDismissed)
}

func TestLoginEligibilityOrder(t *testing.T) {
	// Expired password wins over disabled and dismissed: checks
	// short-circuit in a fixed order.
	svc, _ := newTestService(t, func(u *identity.User) {
		u.PasswordExpiresAt = time.Now().AddDate(0, 0, -1)
		u.AccountDisabled = true
		u.DismissedAt = sql.NullTime{Time: time.Now(), Valid: true}
	})

	_, err := svc.Login(context.Background(), 1001, testPassword)
	require.ErrorIs(t, err, xerrors.ErrPasswordExpired)
}

func TestLoginWrongPasswordBeatsEligibility(t *testing.T) {
	svc, _ := newTestService(t, func(u *identity.User) {
		u.AccountDisabled = true
	})

	_, err := svc.Login(context.Background(), 1001, "gresita")
	require.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginStorageFailure(t *testing.T) {
	svc, store := newTestService(t, nil)
	store.err = errors.New("connection refused")

	_, err := svc.Login(context.Background(), 1001, testPassword)
	require.Error(t, err)
	require.NotErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginTwiceReusesSession(t *testing.T) {
	svc, _ := newTestService(t, nil)

	first, err := svc.Login(context.Background(), 1001, testPassword)
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), 1001, testPassword)
	require.NoError(t, err)

	require.Equal(t, first.Token, second.Token)
	require.Same(t, first.Session, second.Session)
}

func TestConcurrentLoginsSingleToken(t *testing.T) {
	svc, _ := newTestService(t, nil)

	const workers = 32
	tokens := make([]string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, err := svc.Login(context.Background(), 1001, testPassword)
			if assert.NoError(t, err) {
				tokens[i] = rec.Token.String()
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Equal(t, tokens[0], tokens[i])
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t, nil)

	rec, err := svc.Login(context.Background(), 1001, testPassword)
	require.NoError(t, err)
	token := rec.Token.String()

	svc.Logout(token)
	// Second logout with the same token must be a silent no-op.
	svc.Logout(token)
	svc.Logout("not-even-a-uuid")
}

func TestProvisionPassword(t *testing.T) {
	svc, _ := newTestService(t, nil)

	hash, err := svc.ProvisionPassword("parola-noua", testSalt)
	require.NoError(t, err)

	verifier := credential.NewVerifier()
	require.NoError(t, verifier.Verify(testSalt, hash, "parola-noua"))
}
