package ports

import (
	"context"

	"github.com/repairworks/backoffice/internal/core/domain"
)

// CreateOrderInput carries all data needed to compose a new order.
type CreateOrderInput struct {
	ClientID       string
	ContractorID   string
	ObjectID       string
	AssignedUserID string
	MaterialIDs    []string
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	// Create validates all primary references, computes the cost, snapshots
	// the referenced entities, and persists the order. Material ids that do
	// not resolve are dropped silently.
	Create(ctx context.Context, input CreateOrderInput, creator domain.Principal) (*domain.Order, error)
	// Delete removes an order by id. The admin check happens at the route
	// gate before this is reached.
	Delete(ctx context.Context, orderID string) error
}
