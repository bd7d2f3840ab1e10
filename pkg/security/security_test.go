package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestRateLimiter(t *testing.T) {
	r := newRouter(NewRateLimiter(2, time.Hour).Handler())

	codes := hit(r, 3)
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes: want=[200 200 429] got=%v", codes)
	}
}

func TestRateLimiterUpdate(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour)
	r := newRouter(limiter.Handler())

	if codes := hit(r, 2); codes[1] != http.StatusTooManyRequests {
		t.Fatalf("before update: want second request limited, got %v", codes)
	}
	limiter.Update(3, time.Hour)
	codes := hit(r, 4)
	if codes[2] != http.StatusOK || codes[3] != http.StatusTooManyRequests {
		t.Fatalf("after update: want=[200 200 200 429] got=%v", codes)
	}
}

func hit(r *gin.Engine, n int) []int {
	codes := make([]int, n)
	for i := range codes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes[i] = w.Code
	}
	return codes
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newRouter(CORS([]string{"https://dash.example.com"}))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example.com" {
		t.Fatalf("allow origin: got %q", got)
	}
}

func TestSecureHeaders(t *testing.T) {
	r := newRouter(Secure())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get("X-Frame-Options") != "DENY" || w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("headers: got %v", w.Header())
	}
}
