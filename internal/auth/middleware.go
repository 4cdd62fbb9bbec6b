package auth

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"

	"github.com/in-nis/studytrack/internal/flash"
	"github.com/in-nis/studytrack/internal/models"
)

const (
	CookieName = "session"

	userKey    = "auth.user"
	sessionKey = "auth.session"
)

// Identity resolves the session cookie into the identity context. It never
// rejects a request; RequireLogin does that for protected routes. A cookie
// naming a dead session is cleared with the given secure flag.
func Identity(svc *Service, secure bool, log logr.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, sid, err := svc.Identify(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(userKey, user)
			c.Set(sessionKey, sid)
		case errors.Is(err, ErrNoSession):
			ClearCookie(c, secure)
		default:
			log.Error(err, "Failed to resolve session")
		}
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			flash.Set(c, flash.Info, "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// SetCookie writes the session cookie. Non-persistent sessions get a
// browser-session cookie.
func SetCookie(c *gin.Context, tok *SessionToken, secure bool) {
	maxAge := 0
	if tok.Persistent {
		maxAge = int(time.Until(tok.ExpiresAt).Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, tok.Value, maxAge, "/", "", secure, true)
}

func ClearCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}

// SafeNext returns target if it is a local absolute path, else fallback.
func SafeNext(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}
