package repository

import (
	"context"
	"fmt"

	"github.com/example/quickcart/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatsRepository struct {
	users    *mongo.Collection
	products *mongo.Collection
	orders   *mongo.Collection
}

func NewStatsRepository(users, products, orders *mongo.Collection) *StatsRepository {
	return &StatsRepository{users: users, products: products, orders: orders}
}

func (r *StatsRepository) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	var err error

	if stats.TotalUsers, err = r.users.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.TotalSellers, err = r.users.CountDocuments(ctx, bson.M{"role": models.RoleSeller}); err != nil {
		return nil, fmt.Errorf("count sellers: %w", err)
	}
	if stats.TotalProducts, err = r.products.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	revenue, err := r.revenue(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = revenue.Count
	stats.TotalRevenue = revenue.Total
	return &stats, nil
}

func (r *StatsRepository) SellerStats(ctx context.Context, sellerEmail string) (*models.SellerStats, error) {
	stats := models.SellerStats{OrdersByStatus: map[string]int64{}}

	var err error
	if stats.TotalProducts, err = r.products.CountDocuments(ctx, bson.M{"seller.email": sellerEmail}); err != nil {
		return nil, fmt.Errorf("count seller products: %w", err)
	}

	match := bson.D{{Key: "seller", Value: sellerEmail}}
	revenue, err := r.revenue(ctx, match)
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = revenue.Count
	stats.TotalRevenue = revenue.Total

	cursor, err := r.orders.Aggregate(ctx, OrdersByStatusPipeline(match))
	if err != nil {
		return nil, fmt.Errorf("aggregate orders by status: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("decode orders by status: %w", err)
	}
	for _, g := range groups {
		stats.OrdersByStatus[g.Status] = g.Count
	}
	return &stats, nil
}

type revenueTotals struct {
	Total float64 `bson:"total"`
	Count int64   `bson:"count"`
}

func (r *StatsRepository) revenue(ctx context.Context, match bson.D) (revenueTotals, error) {
	cursor, err := r.orders.Aggregate(ctx, RevenuePipeline(match))
	if err != nil {
		return revenueTotals{}, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var totals []revenueTotals
	if err := cursor.All(ctx, &totals); err != nil {
		return revenueTotals{}, fmt.Errorf("decode revenue: %w", err)
	}
	if len(totals) == 0 {
		return revenueTotals{}, nil
	}
	return totals[0], nil
}
