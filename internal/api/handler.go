package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"

	"github.com/in-nis/studytrack/internal/auth"
	"github.com/in-nis/studytrack/internal/config"
	"github.com/in-nis/studytrack/internal/db"
	"github.com/in-nis/studytrack/internal/flash"
	"github.com/in-nis/studytrack/internal/models"
)

// Handler carries the dependencies shared by every page handler.
type Handler struct {
	cfg   *config.Config
	store *db.Store
	auth  *auth.Service
	log   logr.Logger
}

func NewHandler(cfg *config.Config, store *db.Store, svc *auth.Service, log logr.Logger) *Handler {
	return &Handler{cfg: cfg, store: store, auth: svc, log: log}
}

// render adds the identity context and pending notices to data.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	data["CurrentUser"] = auth.CurrentUser(c)
	data["Flashes"] = flash.Messages(c)
	c.HTML(status, name, data)
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "not_found.html", gin.H{"Title": "Not found"})
	c.Abort()
}

// fail logs err and renders the generic error page.
func (h *Handler) fail(c *gin.Context, err error, msg string, kv ...interface{}) {
	h.log.Error(err, msg, kv...)
	h.render(c, http.StatusInternalServerError, "error.html", gin.H{"Title": "Something went wrong"})
	c.Abort()
}

func (h *Handler) unauthorized(c *gin.Context) {
	flash.Set(c, flash.Danger, "Unauthorized access")
	c.Redirect(http.StatusFound, "/dashboard")
	c.Abort()
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ownedSubject loads the subject named by the :id param and checks that
// the caller owns it. On false the response has already been written.
func (h *Handler) ownedSubject(c *gin.Context) (*models.Subject, *models.User, bool) {
	user := auth.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return nil, nil, false
	}

	subject, err := h.store.GetSubject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.notFound(c)
		} else {
			h.fail(c, err, "Failed to load subject", "subject_id", id)
		}
		return nil, nil, false
	}

	if subject.UserID != user.ID {
		h.log.Info("Rejected access to foreign subject", "subject_id", id, "user_id", user.ID)
		h.unauthorized(c)
		return nil, nil, false
	}
	return subject, user, true
}
