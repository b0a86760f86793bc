package gateway

import (
	"errors"
	"io"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorBody is the one envelope every failure is rendered in.
type errorBody struct {
	Error errorDetail `json:"error"`
}

// fail aborts the request with the status and envelope for err. Internal
// causes are logged, never sent to the caller.
func (g *Gateway) fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err),
	}
	if kind == apperr.KindInternal {
		g.logger.Error("Request failed", fields...)
	} else {
		g.logger.Debug("Request rejected", append(fields, zap.String("kind", kind.String()))...)
	}

	c.AbortWithStatusJSON(kind.HTTPStatus(), errorBody{Error: errorDetail{
		Code:    kind.String(),
		Message: apperr.PublicMessage(err),
	}})
}

func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperr.InvalidInput("invalid request body: " + err.Error())
	}
	return nil
}

// bindOptionalJSON is bindJSON for routes where the body may be absent.
func bindOptionalJSON(c *gin.Context, dst interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperr.InvalidInput("invalid request body: " + err.Error())
	}
	return nil
}
