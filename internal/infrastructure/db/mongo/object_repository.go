package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repairworks/backoffice/internal/core/domain"
)

const objectsCollection = "objects"

// WorkObjectRepository persists work objects in the objects collection.
type WorkObjectRepository struct {
	coll *mongo.Collection
}

func NewWorkObjectRepository(db *mongo.Database) *WorkObjectRepository {
	return &WorkObjectRepository{coll: db.Collection(objectsCollection)}
}

type objectDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Type    string             `bson:"type"`
	Address string             `bson:"address"`
	Area    float64            `bson:"area"`
}

func (d objectDoc) toDomain() domain.WorkObject {
	return domain.WorkObject{ID: d.ID.Hex(), Type: d.Type, Address: d.Address, Area: d.Area}
}

func (r *WorkObjectRepository) List(ctx context.Context) ([]domain.WorkObject, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.WorkObject
	for cur.Next(ctx) {
		var d objectDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode object: %w", err)
		}
		out = append(out, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	return out, nil
}

func (r *WorkObjectRepository) FindByID(ctx context.Context, id string) (*domain.WorkObject, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d objectDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find object: %w", err)
	}
	o := d.toDomain()
	return &o, nil
}

func (r *WorkObjectRepository) Insert(ctx context.Context, o *domain.WorkObject) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, objectDoc{Type: o.Type, Address: o.Address, Area: o.Area})
	if err != nil {
		return fmt.Errorf("insert object: %w", err)
	}
	o.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *WorkObjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
