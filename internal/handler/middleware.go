package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		// Health probes would drown everything else out.
		if path == "/health" {
			return
		}

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)

		log.Info().
			Str("request_id", requestID).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("user_id", c.Query("user_id")).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}
