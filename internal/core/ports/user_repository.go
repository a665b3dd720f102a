package ports

import (
	"context"

	"github.com/repairworks/backoffice/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListRegular returns all non-admin users, used to populate the
	// assignee picker on the dashboard.
	ListRegular(ctx context.Context) ([]domain.User, error)
}
