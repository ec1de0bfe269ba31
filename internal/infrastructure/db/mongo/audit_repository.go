package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/urcontent/dashboard-service/internal/core/domain"
)

const collectionResolutions = "role_resolutions"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionResolutions)}
}

// Insert persists a resolution entry to the role_resolutions collection.
func (r *AuditRepository) Insert(ctx context.Context, e *domain.ResolutionEntry) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.col.InsertOne(ctx, e)
	return err
}

// EnsureIndexes creates necessary indexes on the role_resolutions collection.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "resolved_at", Value: -1}},
	})
	return err
}
