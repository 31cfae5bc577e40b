package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(log), Recovery(log))
	r.GET("/ok", func(c *gin.Context) {
		LoggerFrom(c, zap.NewNop()).Info("handler ran")
		c.String(http.StatusOK, "ok")
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	r := newEngine(zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRequestID_Propagated(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newEngine(zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "handler ran", entries[0].Message)
		assert.Equal(t, "abc-123", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "request", entries[1].Message)
		assert.Equal(t, int64(http.StatusOK), entries[1].ContextMap()["status"])
	}
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newEngine(zap.New(core))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}
