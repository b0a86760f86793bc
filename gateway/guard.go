package gateway

import (
	"errors"
	"fmt"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/auth"
	"github.com/example/quickcart/pkg/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const callerEmailKey = "caller_email"

// Guard inspects a request before its handler runs. A non-nil error stops
// the chain and is rendered as the response.
type Guard func(c *gin.Context) error

// Guards folds guards into a single handler that runs them in order.
func (g *Gateway) Guards(guards ...Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, guard := range guards {
			if err := guard(c); err != nil {
				g.fail(c, err)
				return
			}
		}
		c.Next()
	}
}

// Authenticated verifies the session cookie and records the caller email.
func (g *Gateway) Authenticated(c *gin.Context) error {
	token, _ := c.Cookie(g.config.Auth.CookieName)
	email, err := g.deps.Tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrMissingToken) {
			g.logger.Debug("Request without session token", zap.String("path", c.Request.URL.Path))
		} else {
			g.logger.Warn("Rejected session token", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
		return apperr.Unauthenticated("unauthorized access")
	}
	c.Set(callerEmailKey, email)
	return nil
}

func (g *Gateway) IsAdmin(c *gin.Context) error {
	return g.requireRole(c, models.RoleAdmin)
}

func (g *Gateway) IsSeller(c *gin.Context) error {
	return g.requireRole(c, models.RoleSeller)
}

// requireRole fails closed: no caller, no record or another role all deny.
func (g *Gateway) requireRole(c *gin.Context, want string) error {
	denied := apperr.Forbidden(fmt.Sprintf("forbidden access, %s only action", want))

	email := callerEmail(c)
	if email == "" {
		return denied
	}
	role, found, err := g.deps.Identity.Role(c.Request.Context(), email)
	if err != nil {
		return apperr.Internal("failed to verify role", err)
	}
	if !found || role != want {
		return denied
	}
	return nil
}

// selfOrAdmin allows the caller to act on their own email, and admins on any.
func (g *Gateway) selfOrAdmin(c *gin.Context, email string) error {
	if callerEmail(c) == email {
		return nil
	}
	if err := g.requireRole(c, models.RoleAdmin); err != nil {
		if apperr.KindOf(err) == apperr.KindForbidden {
			return apperr.Forbidden("cannot read another user's orders")
		}
		return err
	}
	return nil
}

func callerEmail(c *gin.Context) string {
	return c.GetString(callerEmailKey)
}
