package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID tags every request with an id, reusing the caller's header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Take the id from the client or make a new one
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		// 2. Store it for handlers and echo it back
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "" outside of it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// ErrorLogger logs the errors handlers attached with c.Error once the response is written.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			log.Printf("[%s] %s %s -> %d: %v", GetRequestID(c), c.Request.Method, c.Request.URL.Path, c.Writer.Status(), err.Err)
		}
	}
}
