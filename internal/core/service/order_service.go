package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/repairworks/backoffice/internal/core/domain"
	"github.com/repairworks/backoffice/internal/core/ports"
)

// OrderService composes and deletes orders.
type OrderService struct {
	clients     ports.ClientRepository
	contractors ports.ContractorRepository
	objects     ports.WorkObjectRepository
	materials   ports.MaterialRepository
	users       ports.UserRepository
	orders      ports.OrderRepository
	log         zerolog.Logger
}

func NewOrderService(
	clients ports.ClientRepository,
	contractors ports.ContractorRepository,
	objects ports.WorkObjectRepository,
	materials ports.MaterialRepository,
	users ports.UserRepository,
	orders ports.OrderRepository,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		clients:     clients,
		contractors: contractors,
		objects:     objects,
		materials:   materials,
		users:       users,
		orders:      orders,
		log:         log,
	}
}

// Create builds and persists a new order. All four primary references must
// resolve or nothing is written. Material ids are resolved leniently: ids
// that match no document are dropped and do not contribute to the cost.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput, creator domain.Principal) (*domain.Order, error) {
	if input.ClientID == "" || input.ContractorID == "" || input.ObjectID == "" || input.AssignedUserID == "" {
		return nil, domain.ErrMissingFields
	}

	// Fetch the four referenced entities concurrently; any miss fails the
	// whole join and nothing has been written at that point.
	var (
		client     *domain.Client
		contractor *domain.Contractor
		object     *domain.WorkObject
		assignee   *domain.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		client, err = s.clients.FindByID(gctx, input.ClientID)
		return err
	})
	g.Go(func() (err error) {
		contractor, err = s.contractors.FindByID(gctx, input.ContractorID)
		return err
	})
	g.Go(func() (err error) {
		object, err = s.objects.FindByID(gctx, input.ObjectID)
		return err
	})
	g.Go(func() (err error) {
		assignee, err = s.users.FindByID(gctx, input.AssignedUserID)
		return err
	})
	if err := g.Wait(); err != nil {
		if isNotFound(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("resolve order references: %w", err)
	}

	resolved, err := s.materials.FindByIDs(ctx, input.MaterialIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve materials: %w", err)
	}

	names := make([]string, 0, len(resolved))
	for _, m := range resolved {
		names = append(names, m.Name)
	}

	order := &domain.Order{
		Client:         *client,
		Contractor:     *contractor,
		Object:         *object,
		Materials:      names,
		Cost:           domain.OrderCost(*object, resolved),
		UserID:         creator.ID,
		AssignedUserID: assignee.ID,
		CreatedAt:      time.Now().UTC(),
		Status:         domain.OrderStatusNew,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		s.log.Error().Err(err).Msg("failed to insert order")
		return nil, fmt.Errorf("insert order: %w", err)
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("created_by", creator.ID).
		Str("assigned_to", order.AssignedUserID).
		Float64("cost", order.Cost).
		Msg("order created")

	return order, nil
}

// Delete removes an order by id.
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	s.log.Info().Str("order_id", orderID).Msg("order deleted")
	return nil
}

// isNotFound reports whether err is one of the lookup-miss sentinels.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUserNotFound)
}
