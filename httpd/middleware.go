package httpd

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestID = "request_id"

// RequestLogger tags each request with a request ID and logs the request and
// response status.
func RequestLogger(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestID, id)
		c.Header("X-Request-ID", id)

		start := time.Now()

		c.Next()

		if debug || c.Writer.Status() >= 400 {
			log.Printf("%-5s %v %-6v %v %v %v", level(c.Writer.Status()), id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
		}
	}
}

func level(status int) string {
	switch {
	case status >= 500:
		return "ERROR"
	case status >= 400:
		return "WARN"
	default:
		return "DEBUG"
	}
}
