// internal/pkg/sessions/directory.go
package sessions

import (
	"sync"
	"time"

	"hr-identity-service/internal/domain/identity"
	xerrors "hr-identity-service/internal/pkg/errors"

	"github.com/google/uuid"
)

// DefaultTTL is the inactivity ceiling after which a session no longer
// resolves.
const DefaultTTL = 12 * time.Hour

// Directory is the in-memory session store: the only cross-request mutable
// state in the service. It is constructed once at startup and handed to
// every component that needs it; sessions do not survive a restart.
//
// Two indices reference the same Session instances. The by-token index is
// read on every protected request and takes a RWMutex; the
// by-personnel-number index backs the read-then-maybe-write sequence in
// IssueOrRenew and takes a plain Mutex. Whenever both are held the
// personnel lock is acquired first.
type Directory struct {
	ttl time.Duration

	tokenMu sync.RWMutex
	byToken map[uuid.UUID]*Session

	personnelMu sync.Mutex
	byPersonnel map[int32]Record
}

func NewDirectory(ttl time.Duration) *Directory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Directory{
		ttl:         ttl,
		byToken:     make(map[uuid.UUID]*Session),
		byPersonnel: make(map[int32]Record),
	}
}

// IssueOrRenew returns the live session record for the user, minting one if
// none exists. A user holding a session gets the existing token back with
// the renewal timestamp bumped; concurrent callers for the same personnel
// number always converge on a single record.
func (d *Directory) IssueOrRenew(user identity.User, roles []identity.Role, resources []identity.Resource) Record {
	d.personnelMu.Lock()
	defer d.personnelMu.Unlock()

	if rec, ok := d.byPersonnel[user.PersonnelNumber]; ok {
		rec.Session.renew(time.Now())
		return rec
	}

	sess := &Session{
		User:            user,
		Roles:           roles,
		Resources:       resources,
		authenticatedAt: time.Now(),
	}
	rec := Record{Token: uuid.New(), Session: sess}

	d.byPersonnel[user.PersonnelNumber] = rec

	d.tokenMu.Lock()
	d.byToken[rec.Token] = sess
	d.tokenMu.Unlock()

	return rec
}

// Resolve maps a presented token back to its session. Unknown or
// unparseable tokens fail with ErrInvalidToken; sessions past the
// inactivity ceiling fail with ErrSessionExpired but stay resident, so a
// later Resolve against the same token reports the same failure.
func (d *Directory) Resolve(token string) (*Session, error) {
	key, err := uuid.Parse(token)
	if err != nil {
		return nil, xerrors.ErrInvalidToken
	}

	d.tokenMu.RLock()
	sess, ok := d.byToken[key]
	d.tokenMu.RUnlock()

	if !ok {
		return nil, xerrors.ErrInvalidToken
	}

	if time.Since(sess.AuthenticatedAt()) > d.ttl {
		return nil, xerrors.ErrSessionExpired
	}
	return sess, nil
}

// Invalidate removes the session behind the token from both indices.
// Absence is reported as ErrInvalidToken so callers can pick their own
// policy; the logout contract upstream treats it as a no-op.
func (d *Directory) Invalidate(token string) error {
	key, err := uuid.Parse(token)
	if err != nil {
		return xerrors.ErrInvalidToken
	}

	d.personnelMu.Lock()
	defer d.personnelMu.Unlock()
	d.tokenMu.Lock()
	defer d.tokenMu.Unlock()

	sess, ok := d.byToken[key]
	if !ok {
		return xerrors.ErrInvalidToken
	}

	delete(d.byToken, key)
	delete(d.byPersonnel, sess.User.PersonnelNumber)
	return nil
}

// Len reports the number of live sessions. Diagnostics only.
func (d *Directory) Len() int {
	d.tokenMu.RLock()
	defer d.tokenMu.RUnlock()
	return len(d.byToken)
}
