package gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/example/quickcart/pkg/repository"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	auditWriteTimeout = 5 * time.Second
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// audit records an event without holding up the response.
func (g *Gateway) audit(action, entityID, actor string, data bson.M) {
	if g.deps.Audit == nil {
		return
	}
	entry := &repository.AuditLog{
		Service:  g.config.Server.Name,
		Action:   action,
		EntityID: entityID,
		Actor:    actor,
		Data:     data,
	}
	g.background.Add(1)
	go func() {
		defer g.background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := g.deps.Audit.Create(ctx, entry); err != nil {
			g.logger.Warn("Failed to write audit log",
				zap.String("action", action),
				zap.String("entity_id", entityID),
				zap.Error(err))
		}
	}()
}

// @Summary Audit trail of an entity
// @Tags Audit
// @Param entityId path string true "entity id"
// @Param limit query int false "max entries" default(50)
// @Success 200 {array} repository.AuditLog
// @Router /audit-logs/{entityId} [get]
func (g *Gateway) listAuditLogs(c *gin.Context) {
	limit := int64(defaultAuditLimit)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			g.fail(c, apperr.InvalidInput("limit must be a positive integer"))
			return
		}
		if n > maxAuditLimit {
			n = maxAuditLimit
		}
		limit = n
	}

	logs, err := g.deps.Audit.ListByEntity(c.Request.Context(), c.Param("entityId"), limit)
	if err != nil {
		g.fail(c, err)
		return
	}
	if logs == nil {
		logs = []repository.AuditLog{}
	}
	c.JSON(http.StatusOK, logs)
}
