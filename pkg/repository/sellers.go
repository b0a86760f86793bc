package repository

import (
	"context"
	"fmt"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SellerRepository struct {
	collection *mongo.Collection
}

func NewSellerRepository(collection *mongo.Collection) *SellerRepository {
	return &SellerRepository{collection: collection}
}

// CreateIfAbsent files a seller application for email. A second application
// for the same email returns the first one unchanged.
func (r *SellerRepository) CreateIfAbsent(ctx context.Context, email string, profile models.SellerProfile) (*models.SellerApplication, error) {
	update := bson.M{"$setOnInsert": bson.M{
		"name":        profile.Name,
		"shopName":    profile.ShopName,
		"phone":       profile.Phone,
		"address":     profile.Address,
		"description": profile.Description,
		"role":        models.RoleCustomer,
		"timestamp":   nowMillis(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var app models.SellerApplication
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&app)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return r.findOne(ctx, bson.M{"email": email})
		}
		return nil, fmt.Errorf("upsert seller application: %w", err)
	}
	return &app, nil
}

func (r *SellerRepository) List(ctx context.Context) ([]models.SellerApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list seller applications: %w", err)
	}
	defer cursor.Close(ctx)

	apps := []models.SellerApplication{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("decode seller applications: %w", err)
	}
	return apps, nil
}

func (r *SellerRepository) FindByID(ctx context.Context, id string) (*models.SellerApplication, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *SellerRepository) Delete(ctx context.Context, id string) (models.WriteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.WriteResult{}, err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("delete seller application: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.WriteResult{}, apperr.NotFound("seller application not found")
	}
	return deleteResult(res), nil
}

// DeleteByEmail clears the application filed by email, if any. A missing
// application is not an error.
func (r *SellerRepository) DeleteByEmail(ctx context.Context, email string) (models.WriteResult, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("delete seller application: %w", err)
	}
	return deleteResult(res), nil
}

func (r *SellerRepository) findOne(ctx context.Context, filter bson.M) (*models.SellerApplication, error) {
	var app models.SellerApplication
	if err := r.collection.FindOne(ctx, filter).Decode(&app); err != nil {
		return nil, findErr(err, "seller application")
	}
	return &app, nil
}
