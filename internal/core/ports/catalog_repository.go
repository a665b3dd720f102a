package ports

import (
	"context"

	"github.com/repairworks/backoffice/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Insert(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

// ContractorRepository defines persistence operations for contractors.
type ContractorRepository interface {
	List(ctx context.Context) ([]domain.Contractor, error)
	FindByID(ctx context.Context, id string) (*domain.Contractor, error)
	Insert(ctx context.Context, c *domain.Contractor) error
	Delete(ctx context.Context, id string) error
}

// MaterialRepository defines persistence operations for materials.
type MaterialRepository interface {
	List(ctx context.Context) ([]domain.Material, error)
	// FindByIDs resolves the given ids to material documents. Ids that do
	// not resolve are simply absent from the result, not an error.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Material, error)
	Insert(ctx context.Context, m *domain.Material) error
	Delete(ctx context.Context, id string) error
}

// WorkObjectRepository defines persistence operations for work objects.
type WorkObjectRepository interface {
	List(ctx context.Context) ([]domain.WorkObject, error)
	FindByID(ctx context.Context, id string) (*domain.WorkObject, error)
	Insert(ctx context.Context, o *domain.WorkObject) error
	Delete(ctx context.Context, id string) error
}
