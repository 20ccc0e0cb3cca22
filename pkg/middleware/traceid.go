package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDHeader carries the request's trace id on both sides: an
// incoming value is reused so clients can correlate retries, and the
// response always echoes the id back.
const TraceIDHeader = "X-Trace-ID"

// TraceIDKey is the gin context key the error handler reads when it
// logs a failed request.
const TraceIDKey = "trace_id"

func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(TraceIDKey, traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
