package controllers

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/qrshort/internal/services"
	"github.com/gin-gonic/gin"
)

// Тексты ошибок в поле detail ответа.
const (
	DetailInvalidURL  = "Invalid URL format"
	DetailInvalidBody = "Invalid request body"
	DetailNotFound    = "Short URL not found"
	DetailInternal    = "Internal server error"
)

// ErrorResponse тело ответа с ошибкой.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func abortWithDetail(ctx *gin.Context, status int, detail string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// respondServiceError переводит ошибку сервисного слоя в HTTP ответ. Непредвиденные ошибки
// прикрепляются к контексту gin, их пишет LoggerMiddleware.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		abortWithDetail(ctx, http.StatusBadRequest, DetailInvalidURL)
	case errors.Is(err, services.ErrRecordNotFound):
		abortWithDetail(ctx, http.StatusNotFound, DetailNotFound)
	default:
		_ = ctx.Error(err)
		abortWithDetail(ctx, http.StatusInternalServerError, DetailInternal)
	}
}
