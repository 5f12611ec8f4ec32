package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID keeps a caller supplied X-Request-ID or assigns a new one, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// AccessLog writes one line per request once the handler chain has run.
// Server errors log at error level, client errors at warn.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		log := GetLogger(c)
		if log == nil {
			return
		}
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			log.Error("%s %s %d %s %s", c.Request.Method, path, status, latency, c.Errors.String())
		case status >= 400:
			log.Warn("%s %s %d %s", c.Request.Method, path, status, latency)
		default:
			log.Info("%s %s %d %s", c.Request.Method, path, status, latency)
		}
	}
}
