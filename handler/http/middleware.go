package http

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	"pdfchat/src/log"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// NewRequestLogger returns middleware that assigns a snowflake ID to each
// request and logs its outcome.
func NewRequestLogger() (gin.HandlerFunc, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %v", err)
	}

	return func(c *gin.Context) {
		requestID := node.Generate().String()
		c.Set(RequestIDKey, requestID)

		start := time.Now()
		c.Next()

		log.Info("request completed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}, nil
}
