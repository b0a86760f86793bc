package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/config"
	"github.com/example/quickcart/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection    = "users"
	SellersCollection  = "sellers"
	ProductsCollection = "products"
	OrdersCollection   = "orders"
	ReviewsCollection  = "reviews"
	AuditCollection    = "audit_logs"
)

// Store is the data-access context: built once at start-up and handed to
// every consumer. It owns the client for the lifetime of the process.
type Store struct {
	client   *mongo.Client
	database *mongo.Database

	Users    *UserRepository
	Sellers  *SellerRepository
	Products *ProductRepository
	Orders   *OrderRepository
	Reviews  *ReviewRepository
	Stats    *StatsRepository
	Audit    *AuditRepository
}

func NewStore(cfg *config.MongoDBConfig) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	store := NewStoreFromDatabase(client.Database(cfg.Database))
	store.client = client
	return store, nil
}

// NewStoreFromDatabase wires every repository to its collection in db.
func NewStoreFromDatabase(db *mongo.Database) *Store {
	return &Store{
		client:   db.Client(),
		database: db,
		Users:    NewUserRepository(db.Collection(UsersCollection)),
		Sellers:  NewSellerRepository(db.Collection(SellersCollection)),
		Products: NewProductRepository(db.Collection(ProductsCollection)),
		Orders:   NewOrderRepository(db.Collection(OrdersCollection)),
		Reviews:  NewReviewRepository(db.Collection(ReviewsCollection)),
		Stats: NewStatsRepository(
			db.Collection(UsersCollection),
			db.Collection(ProductsCollection),
			db.Collection(OrdersCollection),
		),
		Audit: NewAuditRepository(db.Collection(AuditCollection)),
	}
}

// EnsureIndexes creates the unique email indexes the upsert-by-lookup
// routes rely on, plus the lookup indexes used by the listing routes.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		SellersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ProductsCollection: {
			{Keys: bson.D{{Key: "seller.email", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "customer.email", Value: 1}, {Key: "orderDate", Value: -1}}},
			{Keys: bson.D{{Key: "seller", Value: 1}, {Key: "orderDate", Value: -1}}},
		},
		ReviewsCollection: {
			{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "date", Value: -1}}},
		},
		AuditCollection: {
			{Keys: bson.D{{Key: "entity_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for name, idx := range indexes {
		if _, err := s.database.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidInput("invalid id")
	}
	return oid, nil
}

// findErr maps a single-document lookup failure on entity to NotFound or a
// wrapped driver error.
func findErr(err error, entity string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(entity + " not found")
	}
	return fmt.Errorf("find %s: %w", entity, err)
}

func insertResult(res *mongo.InsertOneResult) models.WriteResult {
	out := models.WriteResult{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = oid.Hex()
	}
	return out
}

func updateResult(res *mongo.UpdateResult) models.WriteResult {
	return models.WriteResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}

func deleteResult(res *mongo.DeleteResult) models.WriteResult {
	return models.WriteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
