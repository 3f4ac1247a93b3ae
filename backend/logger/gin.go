// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewGinWithZap returns a gin engine that logs requests and recovers panics
// through the given sugared logger instead of gin's default writers.
func NewGinWithZap(l *zap.SugaredLogger) *gin.Engine {
	engine := gin.New()
	engine.Use(ginToZap(l), gin.CustomRecovery(func(c *gin.Context, recovered any) {
		l.Errorf("panic recovered: %v", recovered)
		c.AbortWithStatus(500)
	}))
	return engine
}

func ginToZap(l *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []any{
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"ip", c.ClientIP(),
			"latency", time.Since(start),
		}
		if len(c.Errors) > 0 {
			l.Errorw(c.Errors.String(), fields...)
			return
		}
		l.Infow(path, fields...)
	}
}
