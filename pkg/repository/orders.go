package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(collection *mongo.Collection) *OrderRepository {
	return &OrderRepository{collection: collection}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (models.WriteResult, error) {
	order.ID = primitive.NilObjectID
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}

	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return insertResult(res), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, oid)
}

func (r *OrderRepository) ListForCustomer(ctx context.Context, email string) ([]models.OrderView, error) {
	return r.aggregateViews(ctx, OrderProductPipeline(bson.D{{Key: "customer.email", Value: email}}))
}

func (r *OrderRepository) ListForSeller(ctx context.Context, email string) ([]models.OrderView, error) {
	return r.aggregateViews(ctx, OrderProductPipeline(bson.D{{Key: "seller", Value: email}}))
}

// StatusChange is the outcome of UpdateStatus. Previous is the order as it
// was before the update; Changed is false when the status was already set.
type StatusChange struct {
	Previous models.Order
	Result   models.WriteResult
	Changed  bool
}

// UpdateStatus moves an order addressed to sellerEmail to status. Delivered
// orders are terminal and reported as a conflict.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, sellerEmail, status string) (*StatusChange, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"_id":    oid,
		"seller": sellerEmail,
		"status": bson.M{"$ne": models.OrderDelivered},
	}
	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var previous models.Order
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&previous)
	if err == nil {
		changed := previous.Status != status
		result := models.WriteResult{Acknowledged: true, MatchedCount: 1}
		if changed {
			result.ModifiedCount = 1
		}
		return &StatusChange{Previous: previous, Result: result, Changed: changed}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	current, err := r.findOne(ctx, oid)
	if err != nil {
		return nil, err
	}
	if current.Seller != sellerEmail {
		return nil, apperr.Forbidden("order belongs to another seller")
	}
	return nil, apperr.Conflict("cannot change the status of a delivered order")
}

// Cancel deletes an order on behalf of its customer or seller. A delivered
// order is never deleted; that case is reported as a conflict.
func (r *OrderRepository) Cancel(ctx context.Context, id, callerEmail string) (*models.Order, models.WriteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, models.WriteResult{}, err
	}

	filter := bson.M{
		"_id":    oid,
		"status": bson.M{"$ne": models.OrderDelivered},
		"$or": bson.A{
			bson.M{"customer.email": callerEmail},
			bson.M{"seller": callerEmail},
		},
	}

	var deleted models.Order
	err = r.collection.FindOneAndDelete(ctx, filter).Decode(&deleted)
	if err == nil {
		return &deleted, models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.WriteResult{}, fmt.Errorf("cancel order: %w", err)
	}

	current, err := r.findOne(ctx, oid)
	if err != nil {
		return nil, models.WriteResult{}, err
	}
	if current.Customer.Email != callerEmail && current.Seller != callerEmail {
		return nil, models.WriteResult{}, apperr.Forbidden("order belongs to another customer")
	}
	return nil, models.WriteResult{}, apperr.Conflict("cannot cancel an order once it is delivered")
}

func (r *OrderRepository) findOne(ctx context.Context, oid primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		return nil, findErr(err, "order")
	}
	return &order, nil
}

func (r *OrderRepository) aggregateViews(ctx context.Context, pipeline mongo.Pipeline) ([]models.OrderView, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	defer cursor.Close(ctx)

	views := []models.OrderView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return views, nil
}
