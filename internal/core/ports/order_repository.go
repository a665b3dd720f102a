package ports

import (
	"context"

	"github.com/repairworks/backoffice/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Insert persists the order and writes the store-generated id back
	// onto it.
	Insert(ctx context.Context, o *domain.Order) error
	// ListAll returns every order in insertion order.
	ListAll(ctx context.Context) ([]domain.Order, error)
	// ListForUser returns orders the given user created or was assigned to.
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
	// Delete removes an order by id; domain.ErrOrderNotFound when absent.
	Delete(ctx context.Context, id string) error
}
