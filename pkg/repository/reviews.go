package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(collection *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{collection: collection}
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (models.WriteResult, error) {
	review.ID = primitive.NilObjectID
	if review.Date.IsZero() {
		review.Date = time.Now().UTC()
	}
	res, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("insert review: %w", err)
	}
	return insertResult(res), nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"productId": productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

// Update edits a review written by authorEmail.
func (r *ReviewRepository) Update(ctx context.Context, id, authorEmail string, in models.ReviewUpdate) (models.WriteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.WriteResult{}, err
	}

	set := bson.M{"review": in.Review, "date": time.Now().UTC()}
	if in.Rating != 0 {
		set["rating"] = in.Rating
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid, "email": authorEmail}, bson.M{"$set": set})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("update review: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.WriteResult{}, apperr.NotFound("review not found")
	}
	return updateResult(res), nil
}

// Delete removes a review written by authorEmail.
func (r *ReviewRepository) Delete(ctx context.Context, id, authorEmail string) (models.WriteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.WriteResult{}, err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "email": authorEmail})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.WriteResult{}, apperr.NotFound("review not found")
	}
	return deleteResult(res), nil
}
