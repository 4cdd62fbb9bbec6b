package auth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/in-nis/studytrack/internal/config"
	"github.com/in-nis/studytrack/internal/flash"
)

const (
	stateCookie     = "oauth_state"
	googleUserInfo  = "https://www.googleapis.com/oauth2/v2/userinfo"
	stateCookieLife = 300
)

// Google implements "Sign in with Google" on top of Service sessions.
type Google struct {
	oauth        *oauth2.Config
	svc          *Service
	cookieSecure bool
	userInfoURL  string
	log          logr.Logger
}

func NewGoogle(cfg *config.Config, svc *Service, log logr.Logger) *Google {
	return &Google{
		oauth: &oauth2.Config{
			RedirectURL:  cfg.GoogleRedirectURL,
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleSecret,
			Scopes: []string{
				"openid",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		svc:          svc,
		cookieSecure: cfg.CookieSecure,
		userInfoURL:  googleUserInfo,
		log:          log,
	}
}

// @Summary      Login with Google
// @Description  Redirects to the Google consent screen
// @Tags         auth
// @Success      307
// @Router       /auth/google/login [get]
func (g *Google) LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := gonanoid.New()
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(stateCookie, state, stateCookieLife, "/", "", g.cookieSecure, true)
		c.Redirect(http.StatusTemporaryRedirect, g.oauth.AuthCodeURL(state))
	}
}

// @Summary      Google callback
// @Description  Exchanges the code, signs the matching user in and redirects to the dashboard
// @Tags         auth
// @Param        state  query  string  true  "OAuth state"
// @Param        code   query  string  true  "Authorization code"
// @Success      302
// @Router       /auth/google/callback [get]
func (g *Google) CallbackHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		want, err := c.Cookie(stateCookie)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(stateCookie, "", -1, "/", "", g.cookieSecure, true)
		if err != nil || want == "" || c.Query("state") != want {
			flash.Set(c, flash.Danger, "Google sign-in failed, please try again.")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		ctx := c.Request.Context()
		token, err := g.oauth.Exchange(ctx, c.Query("code"))
		if err != nil {
			g.log.Error(err, "Failed to exchange token")
			flash.Set(c, flash.Danger, "Google sign-in failed, please try again.")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		email, err := g.fetchEmail(c, token)
		if err != nil {
			g.log.Error(err, "Failed to get user info")
			flash.Set(c, flash.Danger, "Google sign-in failed, please try again.")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		user, err := g.svc.FindOrCreateByEmail(ctx, email)
		if err != nil {
			g.log.Error(err, "Failed to save user", "email", email)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		tok, err := g.svc.StartSession(ctx, user, false)
		if err != nil {
			g.log.Error(err, "Failed to start session", "user_id", user.ID)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		SetCookie(c, tok, g.cookieSecure)
		flash.Set(c, flash.Success, "Logged in successfully.")
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

func (g *Google) fetchEmail(c *gin.Context, token *oauth2.Token) (string, error) {
	resp, err := g.oauth.Client(c.Request.Context(), token).Get(g.userInfoURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo: bad status: %s", resp.Status)
	}

	var userInfo struct {
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return "", err
	}
	if userInfo.Email == "" || !userInfo.VerifiedEmail {
		return "", fmt.Errorf("userinfo: no verified email")
	}
	return userInfo.Email, nil
}
