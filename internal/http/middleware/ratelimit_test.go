package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func limitedRouter(rps float64, burst int, keyFn keyFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(rps, burst, keyFn).Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	// rps 0: the bucket never refills, so exactly burst requests pass.
	r := limitedRouter(0, 3, KeyByClientIP())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Too many requests" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestRateLimiter_BucketsAreIndependent(t *testing.T) {
	// Key by header so the test controls bucket identity.
	byHeader := func(c *gin.Context) string { return c.GetHeader("X-Client") }
	r := limitedRouter(0, 1, byHeader)

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Client", client)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send("a"); code != http.StatusOK {
		t.Fatalf("client a first = %d", code)
	}
	if code := send("a"); code != http.StatusTooManyRequests {
		t.Fatalf("client a second = %d, want 429", code)
	}
	// Client b has its own bucket.
	if code := send("b"); code != http.StatusOK {
		t.Fatalf("client b first = %d, want 200", code)
	}
}

func TestNewRateLimiter_CoercesBurst(t *testing.T) {
	rl := NewRateLimiter(1, 0, KeyByClientIP())
	if rl.burst != 1 {
		t.Fatalf("burst = %d, want coerced to 1", rl.burst)
	}
}
