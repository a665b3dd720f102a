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

const contractorsCollection = "contractors"

// ContractorRepository persists contractors in the contractors collection.
type ContractorRepository struct {
	coll *mongo.Collection
}

func NewContractorRepository(db *mongo.Database) *ContractorRepository {
	return &ContractorRepository{coll: db.Collection(contractorsCollection)}
}

type contractorDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Contact string             `bson:"contact"`
}

func (d contractorDoc) toDomain() domain.Contractor {
	return domain.Contractor{ID: d.ID.Hex(), Name: d.Name, Contact: d.Contact}
}

func (r *ContractorRepository) List(ctx context.Context) ([]domain.Contractor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Contractor
	for cur.Next(ctx) {
		var d contractorDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode contractor: %w", err)
		}
		out = append(out, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	return out, nil
}

func (r *ContractorRepository) FindByID(ctx context.Context, id string) (*domain.Contractor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d contractorDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find contractor: %w", err)
	}
	c := d.toDomain()
	return &c, nil
}

func (r *ContractorRepository) Insert(ctx context.Context, c *domain.Contractor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, contractorDoc{Name: c.Name, Contact: c.Contact})
	if err != nil {
		return fmt.Errorf("insert contractor: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *ContractorRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete contractor: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
