package gateway

import (
	"context"

	"github.com/example/quickcart/pkg/discovery"
	"github.com/example/quickcart/pkg/models"
	"github.com/example/quickcart/pkg/notify"
	"github.com/example/quickcart/pkg/repository"
)

// The interfaces below are the slices of the repositories that handlers use.

type IdentityStore interface {
	Role(ctx context.Context, email string) (role string, found bool, err error)
	Invalidate(ctx context.Context, email string)
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateIfAbsent(ctx context.Context, email string, profile models.UserProfile) (*models.User, error)
	RequestSellerRole(ctx context.Context, email string) (models.WriteResult, error)
	ListExcept(ctx context.Context, email string) ([]models.User, error)
	SetRole(ctx context.Context, email, role string) (models.WriteResult, error)
}

type SellerStore interface {
	CreateIfAbsent(ctx context.Context, email string, profile models.SellerProfile) (*models.SellerApplication, error)
	List(ctx context.Context) ([]models.SellerApplication, error)
	FindByID(ctx context.Context, id string) (*models.SellerApplication, error)
	Delete(ctx context.Context, id string) (models.WriteResult, error)
	DeleteByEmail(ctx context.Context, email string) (models.WriteResult, error)
}

type ProductStore interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (models.WriteResult, error)
	Update(ctx context.Context, id, sellerEmail string, in models.ProductInput) (models.WriteResult, error)
	Delete(ctx context.Context, id, sellerEmail string) (models.WriteResult, error)
	AdjustQuantity(ctx context.Context, id string, delta int64) (models.WriteResult, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) (models.WriteResult, error)
	ListForCustomer(ctx context.Context, email string) ([]models.OrderView, error)
	ListForSeller(ctx context.Context, email string) ([]models.OrderView, error)
	UpdateStatus(ctx context.Context, id, sellerEmail, status string) (*repository.StatusChange, error)
	Cancel(ctx context.Context, id, callerEmail string) (*models.Order, models.WriteResult, error)
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) (models.WriteResult, error)
	ListByProduct(ctx context.Context, productID string) ([]models.Review, error)
	Update(ctx context.Context, id, authorEmail string, in models.ReviewUpdate) (models.WriteResult, error)
	Delete(ctx context.Context, id, authorEmail string) (models.WriteResult, error)
}

type StatsStore interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	SellerStats(ctx context.Context, sellerEmail string) (*models.SellerStats, error)
}

type AuditStore interface {
	Create(ctx context.Context, log *repository.AuditLog) error
	ListByEntity(ctx context.Context, entityID string, limit int64) ([]repository.AuditLog, error)
}

// PeerLister reports the instances registered under a service name.
type PeerLister interface {
	Discover(ctx context.Context, serviceName string) ([]discovery.ServiceInstance, error)
}

// Notifier accepts mail for asynchronous delivery.
type Notifier interface {
	Dispatch(msg notify.Message)
}
