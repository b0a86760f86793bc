package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type route struct {
	method  string
	path    string
	guards  []Guard
	handler gin.HandlerFunc
}

// routes is the full HTTP surface. Guards run left to right before the handler.
func (g *Gateway) routes() []route {
	authed := []Guard{g.Authenticated}
	admin := []Guard{g.Authenticated, g.IsAdmin}
	seller := []Guard{g.Authenticated, g.IsSeller}

	return []route{
		{http.MethodGet, "/", nil, g.root},
		{http.MethodGet, "/health", nil, g.health},

		{http.MethodPost, "/jwt", nil, g.issueToken},
		{http.MethodGet, "/logout", nil, g.logout},

		{http.MethodPost, "/users/:email", nil, g.createUser},
		{http.MethodPatch, "/users/:email", authed, g.requestSellerRole},
		{http.MethodGet, "/users/role/:email", nil, g.getUserRole},
		{http.MethodGet, "/all-users/:email", admin, g.listUsers},
		{http.MethodPatch, "/users/role/:email", admin, g.updateUserRole},

		{http.MethodPost, "/sellers/:email", authed, g.createSellerApplication},
		{http.MethodGet, "/sellers", admin, g.listSellerApplications},
		{http.MethodGet, "/seller/:id", admin, g.getSellerApplication},
		{http.MethodDelete, "/seller/:id", admin, g.deleteSellerApplication},

		{http.MethodGet, "/products/seller", seller, g.listSellerProducts},
		{http.MethodPost, "/products", seller, g.createProduct},
		{http.MethodPut, "/products/:id", seller, g.updateProduct},
		{http.MethodDelete, "/products/:id", seller, g.deleteProduct},
		{http.MethodGet, "/products", nil, g.listProducts},
		{http.MethodGet, "/product/:id", nil, g.getProduct},
		{http.MethodPatch, "/products/quantity/:id", authed, g.adjustProductQuantity},

		{http.MethodPost, "/orders", authed, g.createOrder},
		{http.MethodGet, "/customer-orders/:email", authed, g.listCustomerOrders},
		{http.MethodGet, "/seller-orders/:email", authed, g.listSellerOrders},
		{http.MethodPatch, "/update-order-status/:id", seller, g.updateOrderStatus},
		{http.MethodDelete, "/orders/:id", authed, g.cancelOrder},

		{http.MethodPost, "/reviews", authed, g.createReview},
		{http.MethodGet, "/reviews/:productId", nil, g.listReviews},
		{http.MethodPut, "/reviews/:id", authed, g.updateReview},
		{http.MethodDelete, "/reviews/:id", authed, g.deleteReview},

		{http.MethodGet, "/admin-stat", admin, g.adminStats},
		{http.MethodGet, "/seller-statistics", seller, g.sellerStats},
		{http.MethodGet, "/audit-logs/:entityId", admin, g.listAuditLogs},
	}
}
