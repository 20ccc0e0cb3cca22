package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(TraceIDKey))
	})
	return r
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	r := traceIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	traceID := w.Header().Get(TraceIDHeader)
	require.NotEmpty(t, traceID)
	assert.Equal(t, traceID, w.Body.String())
}

func TestTraceIDReusedFromRequestHeader(t *testing.T) {
	r := traceIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceIDHeader, "client-supplied-id")
	r.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied-id", w.Header().Get(TraceIDHeader))
	assert.Equal(t, "client-supplied-id", w.Body.String())
}
