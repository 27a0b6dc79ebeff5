// internal/pkg/credential/verifier.go
package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	xerrors "hr-identity-service/internal/pkg/errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// iterations is fixed; stored hashes carry no parameter block, so every
	// credential in the database was derived with the same cost.
	iterations = 1000
	keyLength  = sha256.Size
)

// Verifier derives and checks salted PBKDF2-HMAC-SHA256 password hashes.
// It holds no state and is safe for concurrent use.
type Verifier struct{}

func NewVerifier() *Verifier {
	return &Verifier{}
}

// Derive computes the encoded digest for a password under the given base64
// salt. Used when provisioning credentials, not on the login path.
func (v *Verifier) Derive(password, salt string) (string, error) {
	decodedSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", xerrors.Wrap(xerrors.ErrInvalidInput, "invalid salt encoding")
	}

	key := pbkdf2.Key([]byte(password), decodedSalt, iterations, keyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key), nil
}

// Verify re-derives the attempted password and compares it against the
// stored digest in constant time. Malformed salt or hash data reports the
// same ErrInvalidCredentials as a wrong password so callers cannot tell
// broken records apart from bad attempts.
func (v *Verifier) Verify(salt, storedHash, attemptedPassword string) error {
	decodedSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return xerrors.ErrInvalidCredentials
	}

	decodedHash, err := base64.StdEncoding.DecodeString(storedHash)
	if err != nil {
		return xerrors.ErrInvalidCredentials
	}

	computed := pbkdf2.Key([]byte(attemptedPassword), decodedSalt, iterations, keyLength, sha256.New)
	if subtle.ConstantTimeCompare(computed, decodedHash) != 1 {
		return xerrors.ErrInvalidCredentials
	}
	return nil
}
