package middleware

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorLogger())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": GetRequestID(c)})
	})
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("store exploded"))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Invoice store unavailable"})
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	newRouter().ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Contains(t, w.Body.String(), id)
}

func TestRequestID_Propagated(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "client-123")
	newRouter().ServeHTTP(w, req)

	assert.Equal(t, "client-123", w.Header().Get(RequestIDHeader))
}

func TestRequestID_OversizedReplaced(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 100))
	newRouter().ServeHTTP(w, req)

	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestErrorLogger(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set(RequestIDHeader, "req-9")
	newRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, buf.String(), "[req-9] GET /fail -> 503: store exploded")
}
