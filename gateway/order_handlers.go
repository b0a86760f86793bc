package gateway

import (
	"net/http"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/models"
	"github.com/example/quickcart/pkg/repository"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// createOrder stores an order placed by the caller and mails both parties.
// Stock is adjusted separately through /products/quantity/:id.
// @Summary Place an order
// @Tags Orders
// @Param body body models.OrderInput true "order"
// @Success 201 {object} models.WriteResult
// @Router /orders [post]
func (g *Gateway) createOrder(c *gin.Context) {
	var in models.OrderInput
	if err := bindJSON(c, &in); err != nil {
		g.fail(c, err)
		return
	}

	caller := callerEmail(c)
	order := &models.Order{
		Customer:  in.Customer,
		Seller:    in.Seller,
		ProductID: in.ProductID,
		Price:     in.Price,
		Quantity:  in.Quantity,
		Size:      in.Size,
	}
	order.Customer.Email = caller

	res, err := g.deps.Orders.Create(c.Request.Context(), order)
	if err != nil {
		g.fail(c, err)
		return
	}
	if res.InsertedID != "" {
		g.notify(orderPlacedMessages(order)...)
		g.audit(repository.ActionOrderCreated, res.InsertedID, caller, bson.M{
			"seller":    order.Seller,
			"productId": order.ProductID,
			"quantity":  order.Quantity,
			"price":     order.Price,
		})
	}
	c.JSON(http.StatusCreated, res)
}

func (g *Gateway) listCustomerOrders(c *gin.Context) {
	email := c.Param("email")
	if err := g.selfOrAdmin(c, email); err != nil {
		g.fail(c, err)
		return
	}
	orders, err := g.deps.Orders.ListForCustomer(c.Request.Context(), email)
	if err != nil {
		g.fail(c, err)
		return
	}
	writeOrders(c, orders)
}

func (g *Gateway) listSellerOrders(c *gin.Context) {
	email := c.Param("email")
	if err := g.selfOrAdmin(c, email); err != nil {
		g.fail(c, err)
		return
	}
	orders, err := g.deps.Orders.ListForSeller(c.Request.Context(), email)
	if err != nil {
		g.fail(c, err)
		return
	}
	writeOrders(c, orders)
}

func writeOrders(c *gin.Context, orders []models.OrderView) {
	if orders == nil {
		orders = []models.OrderView{}
	}
	c.JSON(http.StatusOK, orders)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary Change order status
// @Tags Orders
// @Param id path string true "order id"
// @Param body body statusRequest true "new status"
// @Success 200 {object} models.WriteResult
// @Failure 409 {object} errorBody
// @Router /update-order-status/{id} [patch]
func (g *Gateway) updateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := bindJSON(c, &req); err != nil {
		g.fail(c, err)
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		g.fail(c, apperr.InvalidInput("unknown order status "+req.Status))
		return
	}

	caller := callerEmail(c)
	change, err := g.deps.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), caller, req.Status)
	if err != nil {
		g.fail(c, err)
		return
	}
	if change.Changed {
		g.notify(orderStatusMessage(change.Previous, req.Status))
		g.audit(repository.ActionOrderStatusChanged, change.Previous.ID.Hex(), caller, bson.M{
			"from": change.Previous.Status,
			"to":   req.Status,
		})
	}
	c.JSON(http.StatusOK, change.Result)
}

// @Summary Cancel an order
// @Tags Orders
// @Param id path string true "order id"
// @Success 200 {object} models.WriteResult
// @Failure 409 {object} errorBody
// @Router /orders/{id} [delete]
func (g *Gateway) cancelOrder(c *gin.Context) {
	caller := callerEmail(c)
	order, res, err := g.deps.Orders.Cancel(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		g.fail(c, err)
		return
	}
	g.audit(repository.ActionOrderCancelled, order.ID.Hex(), caller, bson.M{
		"status":   order.Status,
		"customer": order.Customer.Email,
		"seller":   order.Seller,
	})
	c.JSON(http.StatusOK, res)
}
