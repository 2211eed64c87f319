package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRouter(policy *CORSPolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(policy), Secure())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCORS(t *testing.T) {
	policy := NewCORSPolicy([]string{"http://localhost:3000"})
	r := newRouter(policy)

	tests := []struct {
		name   string
		method string
		origin string
		status int
		allow  string
	}{
		{"allowed origin", http.MethodGet, "http://localhost:3000", http.StatusOK, "http://localhost:3000"},
		{"unknown origin", http.MethodGet, "http://evil.example", http.StatusOK, ""},
		{"no origin", http.MethodGet, "", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "http://localhost:3000", http.StatusNoContent, "http://localhost:3000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.allow {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.allow)
			}
			if got := w.Header().Get("X-Content-Type-Options"); tt.status == http.StatusOK && got != "nosniff" {
				t.Errorf("X-Content-Type-Options = %q", got)
			}
		})
	}
}

func TestCORSPolicyUpdate(t *testing.T) {
	policy := NewCORSPolicy([]string{"http://a.example"})
	if !policy.Allowed("http://a.example") {
		t.Fatal("initial origin rejected")
	}

	policy.Update([]string{"*"})
	if policy.Allowed("http://a.example") != true || !policy.Allowed("http://b.example") {
		t.Error("wildcard should allow every origin")
	}

	policy.Update(nil)
	if policy.Allowed("http://a.example") {
		t.Error("origin still allowed after update")
	}
}
