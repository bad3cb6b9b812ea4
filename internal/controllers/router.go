package controllers

import (
	"net/http"

	"github.com/fsdevblog/qrshort/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterParams struct {
	Shortener   LinkShortener
	Resolver    LinkResolver
	Inspector   LinkInspector
	PingService ConnectionChecker
	Logger      *zap.Logger
	Release     bool // gin в release режиме
}

// SetupRouter регистрирует маршруты и middleware.
func SetupRouter(params RouterParams) *gin.Engine {
	if params.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	// ClientIP берется из RemoteAddr, заголовкам прокси не доверяем
	_ = r.SetTrustedProxies(nil)

	r.Use(middlewares.LoggerMiddleware(logger.Named("http")))
	r.Use(gin.CustomRecovery(func(ctx *gin.Context, _ any) {
		abortWithDetail(ctx, http.StatusInternalServerError, DetailInternal)
	}))
	r.Use(middlewares.CORS())
	r.Use(middlewares.GzipMiddleware())

	links := NewLinksController(params.Shortener, params.Resolver, params.Inspector)

	if params.PingService != nil {
		r.GET("/ping", NewPingController(params.PingService).Ping)
	}
	r.GET("/:"+ShortCodeParam, links.Redirect)

	api := r.Group("/api")
	api.POST("/shorten", links.Shorten)
	api.GET("/urls", links.List)
	api.GET("/stats/:"+ShortCodeParam, links.Stats)
	api.GET("/qr/:"+ShortCodeParam, links.QR)

	r.NoRoute(func(ctx *gin.Context) {
		abortWithDetail(ctx, http.StatusNotFound, "Not Found")
	})
	return r
}
