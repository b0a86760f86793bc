package gateway

import (
	"context"
	"sync"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/discovery"
	"github.com/example/quickcart/pkg/models"
	"github.com/example/quickcart/pkg/notify"
	"github.com/example/quickcart/pkg/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeIdentity struct {
	mu          sync.Mutex
	roles       map[string]string
	err         error
	invalidated []string
}

func (f *fakeIdentity) Role(_ context.Context, email string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", false, f.err
	}
	role, ok := f.roles[email]
	return role, ok, nil
}

func (f *fakeIdentity) Invalidate(_ context.Context, email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, email)
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) CreateIfAbsent(_ context.Context, email string, profile models.UserProfile) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	u := &models.User{
		ID:    primitive.NewObjectID(),
		Email: email,
		Name:  profile.Name,
		Photo: profile.Photo,
		Role:  models.RoleCustomer,
	}
	f.users[email] = u
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) RequestSellerRole(_ context.Context, email string) (models.WriteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return models.WriteResult{}, apperr.NotFound("user not found")
	}
	if u.Status == models.StatusRequested {
		return models.WriteResult{}, apperr.InvalidInput("you have already requested, wait for admin approval")
	}
	u.Status = models.StatusRequested
	return models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUsers) ListExcept(_ context.Context, email string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for e, u := range f.users {
		if e != email {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUsers) SetRole(_ context.Context, email, role string) (models.WriteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return models.WriteResult{}, apperr.NotFound("user not found")
	}
	u.Role = role
	u.Status = models.StatusVerified
	return models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeSellers struct {
	apps []models.SellerApplication
}

func (f *fakeSellers) CreateIfAbsent(_ context.Context, email string, profile models.SellerProfile) (*models.SellerApplication, error) {
	for i := range f.apps {
		if f.apps[i].Email == email {
			return &f.apps[i], nil
		}
	}
	app := models.SellerApplication{ID: primitive.NewObjectID(), Email: email, ShopName: profile.ShopName, Role: models.RoleSeller}
	f.apps = append(f.apps, app)
	return &app, nil
}

func (f *fakeSellers) List(context.Context) ([]models.SellerApplication, error) {
	return f.apps, nil
}

func (f *fakeSellers) FindByID(_ context.Context, id string) (*models.SellerApplication, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.InvalidInput("invalid id")
	}
	for i := range f.apps {
		if f.apps[i].ID.Hex() == id {
			return &f.apps[i], nil
		}
	}
	return nil, apperr.NotFound("seller application not found")
}

func (f *fakeSellers) Delete(_ context.Context, id string) (models.WriteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.WriteResult{}, apperr.InvalidInput("invalid id")
	}
	for i := range f.apps {
		if f.apps[i].ID.Hex() == id {
			f.apps = append(f.apps[:i], f.apps[i+1:]...)
			return models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.WriteResult{}, apperr.NotFound("seller application not found")
}

func (f *fakeSellers) DeleteByEmail(_ context.Context, email string) (models.WriteResult, error) {
	for i := range f.apps {
		if f.apps[i].Email == email {
			f.apps = append(f.apps[:i], f.apps[i+1:]...)
			return models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.WriteResult{Acknowledged: true}, nil
}

type fakeProducts struct {
	mu       sync.Mutex
	products map[string]*models.Product
}

func (f *fakeProducts) add(p models.Product) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.products[p.ID.Hex()] = &p
	return p.ID.Hex()
}

func (f *fakeProducts) quantity(id string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products[id].Quantity
}

func (f *fakeProducts) List(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Product
	for _, p := range f.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProducts) ListBySeller(_ context.Context, sellerEmail string) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Product
	for _, p := range f.products {
		if p.Seller.Email == sellerEmail {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) FindByID(_ context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, apperr.NotFound("product not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) Create(_ context.Context, product *models.Product) (models.WriteResult, error) {
	id := f.add(*product)
	return models.WriteResult{Acknowledged: true, InsertedID: id}, nil
}

func (f *fakeProducts) Update(_ context.Context, id, sellerEmail string, in models.ProductInput) (models.WriteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return models.WriteResult{}, apperr.NotFound("product not found")
	}
	if p.Seller.Email != sellerEmail {
		return models.WriteResult{}, apperr.Forbidden("product belongs to another seller")
	}
	p.ProductName = in.ProductName
	p.Price = in.Price
	p.Quantity = in.Quantity
	return models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeProducts) Delete(_ context.Context, id, sellerEmail string) (models.WriteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return models.WriteResult{}, apperr.NotFound("product not found")
	}
	if p.Seller.Email != sellerEmail {
		return models.WriteResult{}, apperr.Forbidden("product belongs to another seller")
	}
	delete(f.products, id)
	return models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (f *fakeProducts) AdjustQuantity(_ context.Context, id string, delta int64) (models.WriteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return models.WriteResult{}, apperr.NotFound("product not found")
	}
	p.Quantity += delta
	return models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeOrders struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

func (f *fakeOrders) add(o models.Order) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = primitive.NewObjectID()
	f.orders[o.ID.Hex()] = &o
	return o.ID.Hex()
}

func (f *fakeOrders) get(id string) (models.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return models.Order{}, false
	}
	return *o, true
}

func (f *fakeOrders) Create(_ context.Context, order *models.Order) (models.WriteResult, error) {
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	id := f.add(*order)
	order.ID, _ = primitive.ObjectIDFromHex(id)
	return models.WriteResult{Acknowledged: true, InsertedID: id}, nil
}

func (f *fakeOrders) list(match func(*models.Order) bool) []models.OrderView {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.OrderView
	for _, o := range f.orders {
		if match(o) {
			out = append(out, models.OrderView{Order: *o})
		}
	}
	return out
}

func (f *fakeOrders) ListForCustomer(_ context.Context, email string) ([]models.OrderView, error) {
	return f.list(func(o *models.Order) bool { return o.Customer.Email == email }), nil
}

func (f *fakeOrders) ListForSeller(_ context.Context, email string) ([]models.OrderView, error) {
	return f.list(func(o *models.Order) bool { return o.Seller == email }), nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id, sellerEmail, status string) (*repository.StatusChange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, apperr.NotFound("order not found")
	}
	if o.Seller != sellerEmail {
		return nil, apperr.Forbidden("order belongs to another seller")
	}
	if o.Status == models.OrderDelivered {
		return nil, apperr.Conflict("cannot change the status of a delivered order")
	}
	previous := *o
	changed := o.Status != status
	o.Status = status
	res := models.WriteResult{Acknowledged: true, MatchedCount: 1}
	if changed {
		res.ModifiedCount = 1
	}
	return &repository.StatusChange{Previous: previous, Result: res, Changed: changed}, nil
}

func (f *fakeOrders) Cancel(_ context.Context, id, callerEmail string) (*models.Order, models.WriteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, models.WriteResult{}, apperr.NotFound("order not found")
	}
	if o.Customer.Email != callerEmail && o.Seller != callerEmail {
		return nil, models.WriteResult{}, apperr.Forbidden("order belongs to another customer")
	}
	if o.Status == models.OrderDelivered {
		return nil, models.WriteResult{}, apperr.Conflict("cannot cancel an order once it is delivered")
	}
	delete(f.orders, id)
	return o, models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type fakeReviews struct {
	reviews []models.Review
}

func (f *fakeReviews) Create(_ context.Context, review *models.Review) (models.WriteResult, error) {
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, *review)
	return models.WriteResult{Acknowledged: true, InsertedID: review.ID.Hex()}, nil
}

func (f *fakeReviews) ListByProduct(_ context.Context, productID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) Update(_ context.Context, id, authorEmail string, in models.ReviewUpdate) (models.WriteResult, error) {
	for i := range f.reviews {
		if f.reviews[i].ID.Hex() != id {
			continue
		}
		if f.reviews[i].Email != authorEmail {
			return models.WriteResult{}, apperr.Forbidden("review belongs to another user")
		}
		f.reviews[i].Review = in.Review
		return models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return models.WriteResult{}, apperr.NotFound("review not found")
}

func (f *fakeReviews) Delete(_ context.Context, id, authorEmail string) (models.WriteResult, error) {
	for i := range f.reviews {
		if f.reviews[i].ID.Hex() != id {
			continue
		}
		if f.reviews[i].Email != authorEmail {
			return models.WriteResult{}, apperr.Forbidden("review belongs to another user")
		}
		f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
		return models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
	}
	return models.WriteResult{}, apperr.NotFound("review not found")
}

type fakeStats struct {
	sellerFor string
}

func (f *fakeStats) AdminStats(context.Context) (*models.AdminStats, error) {
	return &models.AdminStats{TotalUsers: 3, TotalSellers: 1, TotalProducts: 2, TotalOrders: 4, TotalRevenue: 120.5}, nil
}

func (f *fakeStats) SellerStats(_ context.Context, sellerEmail string) (*models.SellerStats, error) {
	f.sellerFor = sellerEmail
	return &models.SellerStats{TotalProducts: 2, OrdersByStatus: map[string]int64{models.OrderPending: 1}}, nil
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []repository.AuditLog
	// release, when set, holds every write until it is closed.
	release chan struct{}
}

func (f *fakeAudit) Create(_ context.Context, log *repository.AuditLog) error {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *log)
	return nil
}

func (f *fakeAudit) ListByEntity(_ context.Context, entityID string, limit int64) ([]repository.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.AuditLog
	for _, e := range f.entries {
		if e.EntityID == entityID && int64(len(out)) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeAudit) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (f *fakeNotifier) Dispatch(msg notify.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
}

func (f *fakeNotifier) messages() []notify.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notify.Message(nil), f.sent...)
}

type fakePeers struct {
	instances []discovery.ServiceInstance
	err       error
	asked     string
}

func (f *fakePeers) Discover(_ context.Context, serviceName string) ([]discovery.ServiceInstance, error) {
	f.asked = serviceName
	return f.instances, f.err
}
