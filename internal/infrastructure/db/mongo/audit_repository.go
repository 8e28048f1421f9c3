package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freshsupply/marketplace-api/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository appends authentication audit events. Documents carry the
// attempted handle and outcome, never the submitted secret.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := bson.M{
		"email":       event.Email,
		"role":        event.Role,
		"action":      event.Action,
		"success":     event.Success,
		"at":          event.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.Reason != "" {
		doc["reason"] = event.Reason
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
