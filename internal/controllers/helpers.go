package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// requestContext контекст запроса, ограниченный DefaultRequestTimeout.
func requestContext(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), DefaultRequestTimeout)
}
