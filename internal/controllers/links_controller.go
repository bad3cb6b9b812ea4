package controllers

import (
	"context"
	"net/http"

	"github.com/fsdevblog/qrshort/internal/services"
	"github.com/fsdevblog/qrshort/internal/shortcode"
	"github.com/gin-gonic/gin"
)

// ShortCodeParam имя параметра пути с коротким кодом.
const ShortCodeParam = "short_code"

// ShortenRequest тело запроса POST /api/shorten.
type ShortenRequest struct {
	OriginalURL string `json:"original_url"`
}

// LinksController обрабатывает создание ссылок, переходы и статистику.
type LinksController struct {
	shortener LinkShortener
	resolver  LinkResolver
	inspector LinkInspector
}

// NewLinksController создает новый экземпляр LinksController.
//
// Параметры:
//   - shortener: сервис создания ссылок
//   - resolver: сервис переходов
//   - inspector: сервис статистики и QR-кодов
//
// Возвращает:
//   - *LinksController: новый экземпляр контроллера
func NewLinksController(shortener LinkShortener, resolver LinkResolver, inspector LinkInspector) *LinksController {
	return &LinksController{
		shortener: shortener,
		resolver:  resolver,
		inspector: inspector,
	}
}

// Shorten обрабатывает POST /api/shorten.
//
// В случае успеха возвращает:
//   - HTTP 200 OK с созданной ссылкой
//
// В случае ошибки возвращает:
//   - HTTP 400 Bad Request, если тело не JSON или URL некорректен
//   - HTTP 500 Internal Server Error
func (l *LinksController) Shorten(ctx *gin.Context) {
	var req ShortenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		abortWithDetail(ctx, http.StatusBadRequest, DetailInvalidBody)
		return
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	link, err := l.shortener.Shorten(reqCtx, req.OriginalURL)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, link)
}

// List обрабатывает GET /api/urls.
func (l *LinksController) List(ctx *gin.Context) {
	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	links, err := l.shortener.List(reqCtx)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, links)
}

// Redirect обрабатывает GET /:short_code и отвечает 302 Found.
// Строки, которые не могут быть коротким кодом, получают 404 без обращения к хранилищу.
func (l *LinksController) Redirect(ctx *gin.Context) {
	code := ctx.Param(ShortCodeParam)
	if !shortcode.IsValid(code) {
		abortWithDetail(ctx, http.StatusNotFound, DetailNotFound)
		return
	}

	// запись перехода не должна обрываться, если клиент закрыл соединение
	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx.Request.Context()), DefaultRequestTimeout)
	defer cancel()

	target, err := l.resolver.Resolve(reqCtx, code, services.Visit{
		UserAgent: ctx.Request.UserAgent(),
		IPAddress: ctx.ClientIP(),
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, target)
}

// Stats обрабатывает GET /api/stats/:short_code.
func (l *LinksController) Stats(ctx *gin.Context) {
	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	stats, err := l.inspector.Stats(reqCtx, ctx.Param(ShortCodeParam))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// QR обрабатывает GET /api/qr/:short_code.
func (l *LinksController) QR(ctx *gin.Context) {
	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	res, err := l.inspector.QR(reqCtx, ctx.Param(ShortCodeParam))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}
