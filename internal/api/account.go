package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/in-nis/studytrack/internal/auth"
	"github.com/in-nis/studytrack/internal/flash"
)

// Home godoc
// @Summary      Home page
// @Tags         pages
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home.html", gin.H{"Title": "Study Tracker"})
}

// Register godoc
// @Summary      Create an account
// @Description  Validates the form, rejects duplicate usernames and emails, then redirects to /login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true  "Username (3-64 chars)"
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password (6+ chars)"
// @Param        confirm   formData  string  true  "Password confirmation"
// @Success      302
// @Failure      422
// @Router       /register [post]
func (h *Handler) Register(c *gin.Context) {
	if auth.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var form RegisterForm
	if c.Request.Method == http.MethodGet {
		h.renderRegister(c, http.StatusOK, form, nil)
		return
	}

	if err := c.ShouldBind(&form); err != nil {
		h.renderRegister(c, http.StatusUnprocessableEntity, form, fieldErrors(err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), form.Username, form.Email, form.Password)
	switch {
	case errors.Is(err, auth.ErrDuplicateUsername):
		h.renderRegister(c, http.StatusUnprocessableEntity, form, map[string]string{"Username": "Username already taken."})
		return
	case errors.Is(err, auth.ErrDuplicateEmail):
		h.renderRegister(c, http.StatusUnprocessableEntity, form, map[string]string{"Email": "Email already registered."})
		return
	case errors.Is(err, auth.ErrValidation):
		h.renderRegister(c, http.StatusUnprocessableEntity, form, map[string]string{"Form": "Please check the form."})
		return
	case err != nil:
		h.fail(c, err, "Failed to register user")
		return
	}

	h.log.Info("User registered", "user_id", user.ID, "username", user.Username)
	flash.Set(c, flash.Success, "Account created! You can now log in.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) renderRegister(c *gin.Context, status int, form RegisterForm, errs map[string]string) {
	form.Password, form.Confirm = "", ""
	h.render(c, status, "register.html", gin.H{"Title": "Register", "Form": form, "Errors": errs})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies email and password and sets the session cookie
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        email     formData  string  true   "Email"
// @Param        password  formData  string  true   "Password"
// @Param        remember  formData  string  false  "Keep me logged in"
// @Success      302
// @Failure      422
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	if auth.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	form := LoginForm{Next: c.Query("next")}
	if c.Request.Method == http.MethodGet {
		h.renderLogin(c, http.StatusOK, form, nil)
		return
	}

	if err := c.ShouldBind(&form); err != nil {
		h.renderLogin(c, http.StatusUnprocessableEntity, form, fieldErrors(err))
		return
	}

	tok, err := h.auth.Login(c.Request.Context(), form.Email, form.Password, form.RememberMe())
	if errors.Is(err, auth.ErrInvalidCredentials) {
		flash.Now(c, flash.Danger, "Invalid email or password")
		h.renderLogin(c, http.StatusOK, form, nil)
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to log in")
		return
	}

	auth.SetCookie(c, tok, h.cfg.CookieSecure)
	flash.Set(c, flash.Success, "Logged in successfully.")
	c.Redirect(http.StatusFound, auth.SafeNext(form.Next, "/dashboard"))
}

func (h *Handler) renderLogin(c *gin.Context, status int, form LoginForm, errs map[string]string) {
	form.Password = ""
	h.render(c, status, "login.html", gin.H{
		"Title":  "Log in",
		"Form":   form,
		"Errors": errs,
		"Google": h.cfg.GoogleEnabled(),
	})
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(auth.CookieName); err == nil {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			h.log.Error(err, "Failed to revoke session")
		}
	}
	auth.ClearCookie(c, h.cfg.CookieSecure)
	flash.Set(c, flash.Info, "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}
