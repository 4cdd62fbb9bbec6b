package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"

	"github.com/in-nis/studytrack/internal/auth"
)

func TestSafeNext(t *testing.T) {
	tests := map[string]struct {
		target string
		want   string
	}{
		"empty":           {target: "", want: "/dashboard"},
		"local path":      {target: "/subject/3", want: "/subject/3"},
		"with query":      {target: "/log_study?subject=Math", want: "/log_study?subject=Math"},
		"absolute url":    {target: "https://evil.test/", want: "/dashboard"},
		"scheme relative": {target: "//evil.test", want: "/dashboard"},
		"backslash":       {target: "/\\evil.test", want: "/dashboard"},
		"relative":        {target: "dashboard", want: "/dashboard"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := auth.SafeNext(tc.target, "/dashboard"); got != tc.want {
				t.Errorf("SafeNext(%q) = %q, want %q", tc.target, got, tc.want)
			}
		})
	}
}

func TestIdentityClearsRevokedSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)
	if _, err := svc.Register(ctx, "alice", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	tok, err := svc.Login(ctx, "alice@example.com", "secret1", false)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := svc.Logout(ctx, tok.Value); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.Identity(svc, true, logr.Discard()))
	var identified bool
	r.GET("/", func(c *gin.Context) {
		identified = auth.CurrentUser(c) != nil
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok.Value})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if identified {
		t.Error("revoked session still identified a user")
	}
	var cleared *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == auth.CookieName {
			cleared = ck
		}
	}
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Fatalf("session cookie not cleared: %+v", cleared)
	}
	if !cleared.Secure {
		t.Error("cleared session cookie dropped the Secure flag")
	}
}
