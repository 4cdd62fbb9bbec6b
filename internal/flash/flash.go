// Package flash implements one-shot user notices carried across a redirect
// in a short-lived cookie.
package flash

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	cookieName = "flash"
	contextKey = "flash.messages"
	pendingKey = "flash.pending"
	secureKey  = "flash.secure"
)

// Kinds used by templates for styling.
const (
	Success = "success"
	Danger  = "danger"
	Info    = "info"
)

type Message struct {
	Kind string `json:"k"`
	Text string `json:"t"`
}

// Middleware moves pending messages from the cookie into the request
// context and expires the cookie. secure marks every flash cookie written
// during the request as HTTPS-only.
func Middleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(secureKey, secure)
		raw, err := c.Cookie(cookieName)
		if err == nil && raw != "" {
			var msgs []Message
			if json.Unmarshal([]byte(raw), &msgs) == nil {
				c.Set(contextKey, msgs)
			}
			expire(c)
		}
		c.Next()
	}
}

// Set queues a message for the next request.
func Set(c *gin.Context, kind, text string) {
	var pending []Message
	if v, ok := c.Get(pendingKey); ok {
		pending, _ = v.([]Message)
	}
	pending = append(pending, Message{Kind: kind, Text: text})
	c.Set(pendingKey, pending)
	b, err := json.Marshal(pending)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, string(b), 60, "/", "", c.GetBool(secureKey), true)
}

// Now adds a message to the page rendered for the current request.
func Now(c *gin.Context, kind, text string) {
	c.Set(contextKey, append(Messages(c), Message{Kind: kind, Text: text}))
}

func Messages(c *gin.Context) []Message {
	if v, ok := c.Get(contextKey); ok {
		if msgs, ok := v.([]Message); ok {
			return msgs
		}
	}
	return nil
}

func expire(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", c.GetBool(secureKey), true)
}
