package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ActionOrderCreated       = "order_created"
	ActionOrderStatusChanged = "order_status_changed"
	ActionOrderCancelled     = "order_cancelled"
)

// AuditLog represents an audit log entry
type AuditLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Service   string             `bson:"service" json:"service"`
	Action    string             `bson:"action" json:"action"`
	EntityID  string             `bson:"entity_id" json:"entityId"`
	Actor     string             `bson:"actor,omitempty" json:"actor,omitempty"`
	Data      bson.M             `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type AuditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(collection *mongo.Collection) *AuditRepository {
	return &AuditRepository{collection: collection}
}

func (r *AuditRepository) Create(ctx context.Context, log *AuditLog) error {
	log.CreatedAt = time.Now().UTC()
	if _, err := r.collection.InsertOne(ctx, log); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListByEntity(ctx context.Context, entityID string, limit int64) ([]AuditLog, error) {
	filter := bson.M{"entity_id": entityID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer cursor.Close(ctx)

	logs := []AuditLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode audit logs: %w", err)
	}
	return logs, nil
}
