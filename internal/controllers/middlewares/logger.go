package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggerMiddleware пишет по одной записи на запрос. Уровень зависит от класса статуса ответа.
// Должен быть первым в стеке middleware, иначе паники и ранние abort не попадут в лог.
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		statusCode := c.Writer.Status()
		fields := []zap.Field{
			zap.String("URI", c.Request.RequestURI),
			zap.Duration("latency", latency),
			zap.Int("status", statusCode),
			zap.String("method", c.Request.Method),
			zap.String("client_ip", c.ClientIP()),
			zap.String("content-type", c.Request.Header.Get("Content-Type")),
			zap.String("content-encoding", c.Request.Header.Get("Content-Encoding")),
		}
		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			fields = append(fields, zap.String("error", errorMessage))
		}

		switch {
		case statusCode >= http.StatusInternalServerError:
			logger.Error("Server error", fields...)
		case statusCode >= http.StatusBadRequest:
			logger.Warn("Client error", fields...)
		default:
			logger.Info("Request processed", fields...)
		}
	}
}
