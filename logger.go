package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newLogger returns a JSON production logger in production and a
// human-readable development logger everywhere else.
func newLogger(cfg config) (*zap.Logger, error) {
	if cfg.production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// requestLogger logs one line per request after the handler chain runs.
// Server errors log at Error, client errors at Warn, the rest at Info.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if id := c.GetInt("user_id"); id != 0 {
			fields = append(fields, zap.Int("user_id", id))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
