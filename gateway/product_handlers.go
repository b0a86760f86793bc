package gateway

import (
	"net/http"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/models"
	"github.com/gin-gonic/gin"
)

// @Summary List products
// @Tags Products
// @Param category query string false "exact category"
// @Param search query string false "case-insensitive name search"
// @Success 200 {array} models.Product
// @Router /products [get]
func (g *Gateway) listProducts(c *gin.Context) {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	products, err := g.deps.Products.List(c.Request.Context(), filter)
	if err != nil {
		g.fail(c, err)
		return
	}
	writeProducts(c, products)
}

func (g *Gateway) listSellerProducts(c *gin.Context) {
	products, err := g.deps.Products.ListBySeller(c.Request.Context(), callerEmail(c))
	if err != nil {
		g.fail(c, err)
		return
	}
	writeProducts(c, products)
}

func writeProducts(c *gin.Context, products []models.Product) {
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Get a product
// @Tags Products
// @Param id path string true "product id"
// @Success 200 {object} models.Product
// @Router /product/{id} [get]
func (g *Gateway) getProduct(c *gin.Context) {
	product, err := g.deps.Products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Create a listing
// @Tags Products
// @Param body body models.ProductInput true "listing"
// @Success 201 {object} models.WriteResult
// @Router /products [post]
func (g *Gateway) createProduct(c *gin.Context) {
	var in models.ProductInput
	if err := bindJSON(c, &in); err != nil {
		g.fail(c, err)
		return
	}

	product := &models.Product{
		ProductName:     in.ProductName,
		Description:     in.Description,
		Image:           in.Image,
		Price:           in.Price,
		DiscountedPrice: in.DiscountedPrice,
		Quantity:        in.Quantity,
		Category:        in.Category,
		Sizes:           in.Sizes,
		DeliveryPrice:   in.DeliveryPrice,
		Seller: models.ProductSeller{
			Email:    callerEmail(c),
			Name:     in.Seller.Name,
			ShopName: in.Seller.ShopName,
		},
	}
	res, err := g.deps.Products.Create(c.Request.Context(), product)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (g *Gateway) updateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := bindJSON(c, &in); err != nil {
		g.fail(c, err)
		return
	}

	res, err := g.deps.Products.Update(c.Request.Context(), c.Param("id"), callerEmail(c), in)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (g *Gateway) deleteProduct(c *gin.Context) {
	res, err := g.deps.Products.Delete(c.Request.Context(), c.Param("id"), callerEmail(c))
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type quantityRequest struct {
	QuantityToUpdate int64  `json:"quantityToUpdate"`
	Status           string `json:"status"`
}

// quantityDelta turns a quantity request into a signed stock change.
// "increase" restocks; anything else is a sale.
func quantityDelta(req quantityRequest) (int64, error) {
	if req.QuantityToUpdate <= 0 {
		return 0, apperr.InvalidInput("quantityToUpdate must be a positive integer")
	}
	if req.Status == "increase" {
		return req.QuantityToUpdate, nil
	}
	return -req.QuantityToUpdate, nil
}

// @Summary Adjust stock
// @Tags Products
// @Param id path string true "product id"
// @Param body body quantityRequest true "amount and direction"
// @Success 200 {object} models.WriteResult
// @Router /products/quantity/{id} [patch]
func (g *Gateway) adjustProductQuantity(c *gin.Context) {
	var req quantityRequest
	if err := bindJSON(c, &req); err != nil {
		g.fail(c, err)
		return
	}
	delta, err := quantityDelta(req)
	if err != nil {
		g.fail(c, err)
		return
	}

	res, err := g.deps.Products.AdjustQuantity(c.Request.Context(), c.Param("id"), delta)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
