package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Seed populates each collection with starter documents when it is empty.
// It runs once at startup and never touches a collection that already holds
// data, so redeploys are safe.
func Seed(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("user1"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash user password: %w", err)
	}

	seeds := map[string][]interface{}{
		usersCollection: {
			userDoc{Login: "admin", Password: string(adminHash), Root: true},
			userDoc{Login: "user1", Password: string(userHash), Root: false},
		},
		clientsCollection: {
			clientDoc{Name: "Ivan Ivanov", Contact: "ivanov@example.com"},
			clientDoc{Name: "Petr Petrov", Contact: "petrov@example.com"},
		},
		contractorsCollection: {
			contractorDoc{Name: "BuildMaster LLC", Contact: "build@example.com"},
			contractorDoc{Name: "Sidorov Sole Trader", Contact: "sidorov@example.com"},
		},
		materialsCollection: {
			materialDoc{Name: "Paint", Cost: 1500},
			materialDoc{Name: "Wallpaper", Cost: 2500},
			materialDoc{Name: "Laminate", Cost: 3000},
		},
		objectsCollection: {
			objectDoc{Type: "Apartment", Address: "10 Lenin St", Area: 50},
			objectDoc{Type: "Office", Address: "5 Gagarin St", Area: 100},
		},
	}

	for name, docs := range seeds {
		coll := db.Collection(name)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("seed: count %s: %w", name, err)
		}
		if count > 0 {
			continue
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed: insert %s: %w", name, err)
		}
		log.Info().Str("collection", name).Int("documents", len(docs)).Msg("seeded collection")
	}

	return nil
}
