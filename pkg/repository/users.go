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

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) *UserRepository {
	return &UserRepository{collection: collection}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, findErr(err, "user")
	}
	return &user, nil
}

// CreateIfAbsent inserts a customer record for email unless one exists, and
// returns whichever document is stored. An existing record is never changed.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, email string, profile models.UserProfile) (*models.User, error) {
	update := bson.M{"$setOnInsert": bson.M{
		"name":      profile.Name,
		"photo":     profile.Photo,
		"role":      models.RoleCustomer,
		"timestamp": nowMillis(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&user)
	if err != nil {
		// A concurrent upsert for the same email lost the unique index race.
		if mongo.IsDuplicateKeyError(err) {
			return r.FindByEmail(ctx, email)
		}
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &user, nil
}

// RequestSellerRole marks the user as having asked for the seller role.
func (r *UserRepository) RequestSellerRole(ctx context.Context, email string) (models.WriteResult, error) {
	filter := bson.M{"email": email, "status": bson.M{"$ne": models.StatusRequested}}
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": models.StatusRequested}})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("request seller role: %w", err)
	}
	if res.MatchedCount > 0 {
		return updateResult(res), nil
	}

	if _, err := r.FindByEmail(ctx, email); err != nil {
		return models.WriteResult{}, err
	}
	return models.WriteResult{}, apperr.InvalidInput("seller role already requested, wait for an admin to review it")
}

// ListExcept returns every user other than email.
func (r *UserRepository) ListExcept(ctx context.Context, email string) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": bson.M{"$ne": email}})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// SetRole assigns role and marks the user Verified.
func (r *UserRepository) SetRole(ctx context.Context, email, role string) (models.WriteResult, error) {
	update := bson.M{"$set": bson.M{"role": role, "status": models.StatusVerified}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("set role: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.WriteResult{}, apperr.NotFound("user not found")
	}
	return updateResult(res), nil
}
