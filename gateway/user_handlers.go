package gateway

import (
	"net/http"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// createUser stores a customer record for :email unless one already exists.
// @Summary Create user if absent
// @Tags Users
// @Param email path string true "user email"
// @Param body body models.UserProfile false "profile"
// @Success 200 {object} models.User
// @Router /users/{email} [post]
func (g *Gateway) createUser(c *gin.Context) {
	var profile models.UserProfile
	if err := bindOptionalJSON(c, &profile); err != nil {
		g.fail(c, err)
		return
	}

	user, err := g.deps.Users.CreateIfAbsent(c.Request.Context(), c.Param("email"), profile)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Request the seller role
// @Tags Users
// @Param email path string true "user email"
// @Success 200 {object} models.WriteResult
// @Router /users/{email} [patch]
func (g *Gateway) requestSellerRole(c *gin.Context) {
	res, err := g.deps.Users.RequestSellerRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get a user's role
// @Tags Users
// @Param email path string true "user email"
// @Success 200 {object} map[string]string
// @Router /users/role/{email} [get]
func (g *Gateway) getUserRole(c *gin.Context) {
	user, err := g.deps.Users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": user.Role})
}

func (g *Gateway) listUsers(c *gin.Context) {
	users, err := g.deps.Users.ListExcept(c.Request.Context(), c.Param("email"))
	if err != nil {
		g.fail(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

// updateUserRole assigns a role and drops the cached one so guards see it at once.
// @Summary Assign a role
// @Tags Users
// @Param email path string true "user email"
// @Param body body roleRequest true "new role"
// @Success 200 {object} models.WriteResult
// @Router /users/role/{email} [patch]
func (g *Gateway) updateUserRole(c *gin.Context) {
	var req roleRequest
	if err := bindJSON(c, &req); err != nil {
		g.fail(c, err)
		return
	}
	if !models.ValidRole(req.Role) {
		g.fail(c, apperr.InvalidInput("unknown role "+req.Role))
		return
	}

	email := c.Param("email")
	res, err := g.deps.Users.SetRole(c.Request.Context(), email, req.Role)
	if err != nil {
		g.fail(c, err)
		return
	}
	g.deps.Identity.Invalidate(c.Request.Context(), email)

	if req.Role == models.RoleSeller {
		if _, err := g.deps.Sellers.DeleteByEmail(c.Request.Context(), email); err != nil {
			g.logger.Warn("Failed to clear seller application after promotion",
				zap.String("email", email), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, res)
}
