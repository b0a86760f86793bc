package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type tokenRequest struct {
	Email string `json:"email"`
}

// issueToken signs a session token for the posted email and sets it as a cookie.
// @Summary Issue session cookie
// @Tags Auth
// @Accept json
// @Param body body tokenRequest true "caller email"
// @Success 200 {object} map[string]bool
// @Router /jwt [post]
func (g *Gateway) issueToken(c *gin.Context) {
	var req tokenRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		g.fail(c, err)
		return
	}

	token, err := g.deps.Tokens.Issue(req.Email)
	if err != nil {
		g.fail(c, err)
		return
	}
	g.setSessionCookie(c, token, int(g.deps.Tokens.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Clear session cookie
// @Tags Auth
// @Success 200 {object} map[string]bool
// @Router /logout [get]
func (g *Gateway) logout(c *gin.Context) {
	g.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (g *Gateway) setSessionCookie(c *gin.Context, value string, maxAge int) {
	secure := g.config.Server.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(g.config.Auth.CookieName, value, maxAge, "/", "", secure, true)
}
