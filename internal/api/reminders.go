package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/in-nis/studytrack/internal/auth"
	"github.com/in-nis/studytrack/internal/flash"
	"github.com/in-nis/studytrack/internal/models"
)

// Reminders godoc
// @Summary      List or create standalone reminders
// @Description  Reminders created here are the ones the reminder poller marks done once due.
// @Tags         reminders
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        remind_time  formData  string  true   "YYYY-MM-DD HH:MM (UTC)"
// @Success      200
// @Success      302
// @Failure      422
// @Router       /reminders [post]
func (h *Handler) Reminders(c *gin.Context) {
	user := auth.CurrentUser(c)
	ctx := c.Request.Context()

	var form ReminderForm
	status := http.StatusOK
	errs := map[string]string{}

	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBind(&form); err != nil {
			errs = fieldErrors(err)
		}
		var remindAt time.Time
		if _, missing := errs["RemindTime"]; !missing {
			var ok bool
			if remindAt, ok = parseDateTime(form.RemindTime); !ok {
				errs["RemindTime"] = msgInvalidDateTime
			}
		}

		if len(errs) == 0 {
			reminder := models.Reminder{
				Title:       form.Title,
				Description: form.Description,
				RemindTime:  remindAt,
				UserID:      &user.ID,
			}
			if err := h.store.CreateReminder(ctx, &reminder); err != nil {
				h.fail(c, err, "Failed to add reminder", "user_id", user.ID)
				return
			}
			flash.Set(c, flash.Success, "Reminder added!")
			c.Redirect(http.StatusFound, "/reminders")
			return
		}
		status = http.StatusUnprocessableEntity
	}

	reminders, err := h.store.ListReminders(ctx, user.ID)
	if err != nil {
		h.fail(c, err, "Failed to fetch reminders", "user_id", user.ID)
		return
	}
	h.render(c, status, "reminders.html", gin.H{
		"Title":     "Reminders",
		"Reminders": reminders,
		"Form":      form,
		"Errors":    errs,
	})
}
