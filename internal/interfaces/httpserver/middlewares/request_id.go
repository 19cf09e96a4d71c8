package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader     = "X-Request-Id"
	requestIDContextKey = "request_id"
)

// RequestID tags every request with an X-Request-Id so a portal session can
// be correlated across the auth, identity and guard stages. An id supplied
// by the gateway is kept as-is; otherwise a fresh one is minted and echoed
// back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, id)
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Set(requestIDContextKey, id)
		c.Next()
	}
}

// RequestIDFromContext returns the id assigned by RequestID, or an empty
// string when the middleware has not run for this request.
func RequestIDFromContext(c *gin.Context) string {
	val, _ := c.Get(requestIDContextKey)
	id, _ := val.(string)
	return id
}
