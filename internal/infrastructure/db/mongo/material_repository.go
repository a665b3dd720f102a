package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repairworks/backoffice/internal/core/domain"
)

const materialsCollection = "materials"

// MaterialRepository persists materials in the materials collection.
type MaterialRepository struct {
	coll *mongo.Collection
}

func NewMaterialRepository(db *mongo.Database) *MaterialRepository {
	return &MaterialRepository{coll: db.Collection(materialsCollection)}
}

type materialDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Cost float64            `bson:"cost"`
}

func (d materialDoc) toDomain() domain.Material {
	return domain.Material{ID: d.ID.Hex(), Name: d.Name, Cost: d.Cost}
}

func (r *MaterialRepository) List(ctx context.Context) ([]domain.Material, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{})
}

// FindByIDs resolves ids to material documents. Ids that are malformed or
// match nothing are absent from the result; the caller decides what that
// means (order composition treats it as a silent drop).
func (r *MaterialRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Material, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *MaterialRepository) find(ctx context.Context, filter bson.M) ([]domain.Material, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find materials: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Material
	for cur.Next(ctx) {
		var d materialDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode material: %w", err)
		}
		out = append(out, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find materials: %w", err)
	}
	return out, nil
}

func (r *MaterialRepository) Insert(ctx context.Context, m *domain.Material) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, materialDoc{Name: m.Name, Cost: m.Cost})
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	m.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
