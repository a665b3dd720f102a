package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repairworks/backoffice/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository persists orders in the orders collection. Orders embed
// full snapshots of the client, contractor, and object documents taken at
// creation time.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type orderDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Client         domain.Client      `bson:"client"`
	Contractor     domain.Contractor  `bson:"contractor"`
	Object         domain.WorkObject  `bson:"object"`
	Materials      []string           `bson:"materials"`
	Cost           float64            `bson:"cost"`
	UserID         string             `bson:"user_id"`
	AssignedUserID string             `bson:"assigned_user_id"`
	CreatedAt      time.Time          `bson:"created_at"`
	Status         string             `bson:"status"`
}

func toOrderDoc(o *domain.Order) orderDoc {
	return orderDoc{
		Client:         o.Client,
		Contractor:     o.Contractor,
		Object:         o.Object,
		Materials:      o.Materials,
		Cost:           o.Cost,
		UserID:         o.UserID,
		AssignedUserID: o.AssignedUserID,
		CreatedAt:      o.CreatedAt,
		Status:         string(o.Status),
	}
}

func (d orderDoc) toDomain() domain.Order {
	return domain.Order{
		ID:             d.ID.Hex(),
		Client:         d.Client,
		Contractor:     d.Contractor,
		Object:         d.Object,
		Materials:      d.Materials,
		Cost:           d.Cost,
		UserID:         d.UserID,
		AssignedUserID: d.AssignedUserID,
		CreatedAt:      d.CreatedAt,
		Status:         domain.OrderStatus(d.Status),
	}
}

// Insert persists the order and writes the generated id back onto it.
func (r *OrderRepository) Insert(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toOrderDoc(o))
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	o.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// ListAll returns every order in insertion order.
func (r *OrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, bson.M{})
}

// ListForUser returns orders the user created or was assigned to.
func (r *OrderRepository) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.list(ctx, bson.M{"$or": bson.A{
		bson.M{"user_id": userID},
		bson.M{"assigned_user_id": userID},
	}})
}

func (r *OrderRepository) list(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Order
	for cur.Next(ctx) {
		var d orderDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		out = append(out, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

// Delete removes an order by id.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the visibility query.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_user_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
