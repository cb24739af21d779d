package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"cctv_estimator/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// StaticAuthenticator accepts exactly one configured operator. The password
// is only kept as a bcrypt hash.
//
// This is a placeholder gate, not an identity system.
type StaticAuthenticator struct {
	email string
	hash  []byte
}

var _ interfaces.IAuthenticator = (*StaticAuthenticator)(nil)

func NewStaticAuthenticator(email, password string) (*StaticAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &StaticAuthenticator{email: normalizeEmail(email), hash: hash}, nil
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(normalizeEmail(email)), []byte(a.email)) == 1
	// Always run bcrypt so a wrong email costs the same as a wrong password.
	pwErr := bcrypt.CompareHashAndPassword(a.hash, []byte(password))
	if !emailOK || pwErr != nil {
		return interfaces.ErrInvalidCredentials
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
