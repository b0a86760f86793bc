package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Platform totals
// @Tags Stats
// @Success 200 {object} models.AdminStats
// @Router /admin-stat [get]
func (g *Gateway) adminStats(c *gin.Context) {
	stats, err := g.deps.Stats.AdminStats(c.Request.Context())
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Totals for the calling seller
// @Tags Stats
// @Success 200 {object} models.SellerStats
// @Router /seller-statistics [get]
func (g *Gateway) sellerStats(c *gin.Context) {
	stats, err := g.deps.Stats.SellerStats(c.Request.Context(), callerEmail(c))
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
