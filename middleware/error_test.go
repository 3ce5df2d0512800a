package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pagegrade/backend/logging"
)

func newTestStatistics() *logging.Statistics {
	return &logging.Statistics{
		UniqueVisitors: make(map[string]time.Time),
		EndpointCounts: make(map[string]int),
		GradeCounts:    make(map[string]int),
		LanguageCounts: make(map[string]int),
	}
}

func TestRecoveryConvertsPanicTo500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stats := newTestStatistics()

	r := gin.New()
	r.Use(Recovery(stats))
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/boom", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	if stats.GetErrorRate() != 100 {
		t.Errorf("panic should be counted as an error, rate = %v", stats.GetErrorRate())
	}
	if stats.EndpointCounts["/boom"] != 1 {
		t.Errorf("panicking endpoint should be counted, got %v", stats.EndpointCounts)
	}
}

func TestRecoveryPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stats := newTestStatistics()

	r := gin.New()
	r.Use(Recovery(stats))
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if stats.GetErrorRate() != 0 {
		t.Errorf("healthy request must not count as error, rate = %v", stats.GetErrorRate())
	}
}
