package repository

import (
	"context"
	"fmt"
	"regexp"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{collection: collection}
}

func (r *ProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return r.find(ctx, productQuery(filter))
}

func (r *ProductRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"seller.email": sellerEmail})
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		return nil, findErr(err, "product")
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (models.WriteResult, error) {
	product.ID = primitive.NilObjectID
	if product.Timestamp == 0 {
		product.Timestamp = nowMillis()
	}
	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("insert product: %w", err)
	}
	return insertResult(res), nil
}

// Update replaces the writable fields of a listing owned by sellerEmail.
func (r *ProductRepository) Update(ctx context.Context, id, sellerEmail string, in models.ProductInput) (models.WriteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.WriteResult{}, err
	}

	set := bson.M{
		"productName":     in.ProductName,
		"description":     in.Description,
		"image":           in.Image,
		"price":           in.Price,
		"discountedPrice": in.DiscountedPrice,
		"quantity":        in.Quantity,
		"category":        in.Category,
		"sizes":           in.Sizes,
		"deliveryPrice":   in.DeliveryPrice,
	}
	if in.Seller.Name != "" {
		set["seller.name"] = in.Seller.Name
	}
	if in.Seller.ShopName != "" {
		set["seller.shopName"] = in.Seller.ShopName
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid, "seller.email": sellerEmail}, bson.M{"$set": set})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.WriteResult{}, apperr.NotFound("product not found")
	}
	return updateResult(res), nil
}

// Delete removes a listing owned by sellerEmail.
func (r *ProductRepository) Delete(ctx context.Context, id, sellerEmail string) (models.WriteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.WriteResult{}, err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "seller.email": sellerEmail})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.WriteResult{}, apperr.NotFound("product not found")
	}
	return deleteResult(res), nil
}

// AdjustQuantity adds delta (which may be negative) to the stock of a
// product with a single $inc, so concurrent adjustments never lose updates.
func (r *ProductRepository) AdjustQuantity(ctx context.Context, id string, delta int64) (models.WriteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return models.WriteResult{}, err
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"quantity": delta}})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("adjust quantity: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.WriteResult{}, apperr.NotFound("product not found")
	}
	return updateResult(res), nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func productQuery(filter models.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["productName"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}
	return query
}
