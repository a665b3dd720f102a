package ports

import (
	"context"

	"github.com/repairworks/backoffice/internal/core/domain"
)

// SessionStore holds authenticated principals server-side, keyed by an
// opaque token handed to the browser as a cookie.
type SessionStore interface {
	// Issue stores the principal and returns the cookie token for it.
	Issue(ctx context.Context, p domain.Principal) (string, error)
	// Resolve returns the principal for a token; domain.ErrNoSession when
	// the token is invalid, expired, or revoked.
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
	// Revoke destroys the session behind the token. Revoking an unknown
	// token is not an error.
	Revoke(ctx context.Context, token string) error
}
