package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"askhub/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(captured **logger.Logger) *gin.Engine {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/ping", func(c *gin.Context) {
			*captured = logger.FromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("reuses caller-provided header and stashes request logger", func(t *testing.T) {
		var captured *logger.Logger
		router := newRouter(&captured)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "fixed-id")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "fixed-id", captured.Entry.Data["request_id"])
	})

	t.Run("generates an id when none provided", func(t *testing.T) {
		var captured *logger.Logger
		router := newRouter(&captured)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		generated := w.Header().Get("X-Request-ID")
		assert.NotEmpty(t, generated)
		assert.Equal(t, generated, captured.Entry.Data["request_id"])
	})
}
