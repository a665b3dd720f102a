package ports

import (
	"context"

	"github.com/repairworks/backoffice/internal/core/domain"
)

// AuthService implements the login/logout flow.
type AuthService interface {
	// Login verifies the credentials and establishes a session. On success
	// it returns the cookie token and the session principal; on any
	// credential mismatch it returns domain.ErrInvalidCredentials without
	// distinguishing which field was wrong.
	Login(ctx context.Context, login, password string) (string, *domain.Principal, error)
	// Logout destroys the session behind the token.
	Logout(ctx context.Context, token string) error
}
