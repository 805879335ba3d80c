package httpx

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeMC777/ordenes-delivery/internal/identity"
)

func init() {
	gin.SetMode(gin.TestMode)
	log.SetOutput(io.Discard)
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected generated request id")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc" {
		t.Fatalf("request id=%q, want abc", got)
	}
}

func TestAuthAndRequireRole(t *testing.T) {
	v := identity.NewVerifier("secret", "")
	r := gin.New()
	r.Use(Auth(v))
	r.GET("/admin", RequireRole(identity.RoleAdmin), func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		c.String(http.StatusOK, p.AccountID)
	})

	admin, _ := v.Issue(identity.Principal{AccountID: "adm", Role: identity.RoleAdmin}, time.Minute)
	rider, _ := v.Issue(identity.Principal{AccountID: "rdr", Role: identity.RoleRider}, time.Minute)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer " + rider, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s: status=%d want=%d body=%s", tt.name, w.Code, tt.want, w.Body.String())
		}
	}
}

func TestIntegrationKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	r := gin.New()
	r.POST("/hook", IntegrationKey(string(hash)), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/off", IntegrationKey(""), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	cases := []struct {
		path, key string
		want      int
	}{
		{"/hook", "", http.StatusUnauthorized},
		{"/hook", "wrong", http.StatusUnauthorized},
		{"/hook", "s3cret", http.StatusNoContent},
		{"/off", "s3cret", http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, tc.path, nil)
		if tc.key != "" {
			req.Header.Set("X-Integration-Key", tc.key)
		}
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s key=%q: status=%d want=%d", tc.path, tc.key, w.Code, tc.want)
		}
	}
}
