package interfaces

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// IAuthenticator validates operator credentials. It returns
// ErrInvalidCredentials on mismatch.
type IAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) error
}
