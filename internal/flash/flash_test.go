package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/in-nis/studytrack/internal/flash"
)

func newEngine(seen *[]flash.Message, secure bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(flash.Middleware(secure))
	r.GET("/set", func(c *gin.Context) {
		flash.Set(c, flash.Success, "Saved.")
		flash.Set(c, flash.Info, "Check your inbox.")
		c.Status(http.StatusFound)
	})
	r.GET("/show", func(c *gin.Context) {
		flash.Now(c, flash.Danger, "Inline.")
		*seen = flash.Messages(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestRoundTrip(t *testing.T) {
	var seen []flash.Message
	r := newEngine(&seen, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Set wrote no cookie")
	}
	last := cookies[len(cookies)-1]

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(last)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	want := []flash.Message{
		{Kind: flash.Success, Text: "Saved."},
		{Kind: flash.Info, Text: "Check your inbox."},
		{Kind: flash.Danger, Text: "Inline."},
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}

	var expired bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == last.Name && ck.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Error("flash cookie not expired after it was read")
	}
}

func TestMalformedCookieIgnored(t *testing.T) {
	var seen []flash.Message
	r := newEngine(&seen, false)

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "not-json"})
	r.ServeHTTP(httptest.NewRecorder(), req)

	if diff := cmp.Diff([]flash.Message{{Kind: flash.Danger, Text: "Inline."}}, seen); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestSecureCookies(t *testing.T) {
	var seen []flash.Message
	r := newEngine(&seen, true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	set := w.Result().Cookies()

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(set[len(set)-1])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	expired := w.Result().Cookies()

	for _, ck := range append(set, expired...) {
		if !ck.Secure {
			t.Errorf("cookie %s (max-age %d) is not marked Secure", ck.Name, ck.MaxAge)
		}
	}
	if len(expired) == 0 {
		t.Error("reading the flash cookie did not expire it")
	}
}
