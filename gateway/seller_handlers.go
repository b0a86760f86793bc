package gateway

import (
	"net/http"

	"github.com/example/quickcart/pkg/models"
	"github.com/gin-gonic/gin"
)

// @Summary Apply to become a seller
// @Tags Sellers
// @Param email path string true "applicant email"
// @Param body body models.SellerProfile false "shop details"
// @Success 200 {object} models.SellerApplication
// @Router /sellers/{email} [post]
func (g *Gateway) createSellerApplication(c *gin.Context) {
	var profile models.SellerProfile
	if err := bindOptionalJSON(c, &profile); err != nil {
		g.fail(c, err)
		return
	}

	app, err := g.deps.Sellers.CreateIfAbsent(c.Request.Context(), c.Param("email"), profile)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (g *Gateway) listSellerApplications(c *gin.Context) {
	apps, err := g.deps.Sellers.List(c.Request.Context())
	if err != nil {
		g.fail(c, err)
		return
	}
	if apps == nil {
		apps = []models.SellerApplication{}
	}
	c.JSON(http.StatusOK, apps)
}

func (g *Gateway) getSellerApplication(c *gin.Context) {
	app, err := g.deps.Sellers.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (g *Gateway) deleteSellerApplication(c *gin.Context) {
	res, err := g.deps.Sellers.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
