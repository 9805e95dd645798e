package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), AccessLog())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("requestID")})
	})
	return router
}

// TestRequestID_Generated checks that a fresh id is issued when none is sent
func TestRequestID_Generated(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("expected uuid request id, got %q", w.Header().Get(RequestIDHeader))
	}
}

// TestRequestID_Propagated checks that a valid caller id is kept
func TestRequestID_Propagated(t *testing.T) {
	router := setupRouter()
	id := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != id {
		t.Errorf("expected %s, got %s", id, got)
	}
}

// TestRequestID_InvalidReplaced checks that garbage ids are not echoed back
func TestRequestID_InvalidReplaced(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got == "<script>" {
		t.Errorf("invalid request id was echoed")
	}
}
