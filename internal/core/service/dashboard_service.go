package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/repairworks/backoffice/internal/core/domain"
	"github.com/repairworks/backoffice/internal/core/ports"
)

// DashboardService assembles the single payload the dashboard renders from.
type DashboardService struct {
	clients     ports.ClientRepository
	contractors ports.ContractorRepository
	objects     ports.WorkObjectRepository
	materials   ports.MaterialRepository
	users       ports.UserRepository
	orders      ports.OrderRepository
	log         zerolog.Logger
}

func NewDashboardService(
	clients ports.ClientRepository,
	contractors ports.ContractorRepository,
	objects ports.WorkObjectRepository,
	materials ports.MaterialRepository,
	users ports.UserRepository,
	orders ports.OrderRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		clients:     clients,
		contractors: contractors,
		objects:     objects,
		materials:   materials,
		users:       users,
		orders:      orders,
		log:         log,
	}
}

// Fetch returns the catalog collections in full, the non-admin user list,
// and the orders the principal is allowed to see: all of them for admins,
// otherwise only orders the principal created or was assigned to.
func (s *DashboardService) Fetch(ctx context.Context, p domain.Principal) (*ports.DashboardData, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	contractors, err := s.contractors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	objects, err := s.objects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	users, err := s.users.ListRegular(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var orders []domain.Order
	if p.IsAdmin {
		orders, err = s.orders.ListAll(ctx)
	} else {
		orders, err = s.orders.ListForUser(ctx, p.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return &ports.DashboardData{
		User:        p,
		Clients:     clients,
		Contractors: contractors,
		Materials:   materials,
		Objects:     objects,
		Users:       users,
		Orders:      orders,
	}, nil
}
