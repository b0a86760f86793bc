package gateway

import (
	"net/http"

	"github.com/example/quickcart/pkg/models"
	"github.com/gin-gonic/gin"
)

// @Summary Review a product
// @Tags Reviews
// @Param body body models.ReviewInput true "review"
// @Success 201 {object} models.WriteResult
// @Router /reviews [post]
func (g *Gateway) createReview(c *gin.Context) {
	var in models.ReviewInput
	if err := bindJSON(c, &in); err != nil {
		g.fail(c, err)
		return
	}

	review := &models.Review{
		ProductID: in.ProductID,
		Email:     callerEmail(c),
		Name:      in.Name,
		Review:    in.Review,
		Rating:    in.Rating,
	}
	res, err := g.deps.Reviews.Create(c.Request.Context(), review)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (g *Gateway) listReviews(c *gin.Context) {
	reviews, err := g.deps.Reviews.ListByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		g.fail(c, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

func (g *Gateway) updateReview(c *gin.Context) {
	var in models.ReviewUpdate
	if err := bindJSON(c, &in); err != nil {
		g.fail(c, err)
		return
	}

	res, err := g.deps.Reviews.Update(c.Request.Context(), c.Param("id"), callerEmail(c), in)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (g *Gateway) deleteReview(c *gin.Context) {
	res, err := g.deps.Reviews.Delete(c.Request.Context(), c.Param("id"), callerEmail(c))
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
