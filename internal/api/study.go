package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/in-nis/studytrack/internal/auth"
	"github.com/in-nis/studytrack/internal/db"
	"github.com/in-nis/studytrack/internal/excel"
	"github.com/in-nis/studytrack/internal/flash"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LogStudy godoc
// @Summary      Log a study session
// @Description  Resolves the subject by exact name among the caller's subjects
// @Tags         study
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        subject           formData  string  true   "Subject name"
// @Param        duration_minutes  formData  int     true   "Minutes studied"
// @Param        notes             formData  string  false  "Notes"
// @Success      302
// @Failure      422
// @Router       /log_study [post]
func (h *Handler) LogStudy(c *gin.Context) {
	user := auth.CurrentUser(c)
	ctx := c.Request.Context()

	subjects, err := h.store.ListSubjectsByOwner(ctx, user.ID)
	if err != nil {
		h.fail(c, err, "Failed to fetch subjects", "user_id", user.ID)
		return
	}

	var form StudySessionForm
	if c.Request.Method == http.MethodGet {
		form.Subject = c.Query("subject")
		h.render(c, http.StatusOK, "log_study.html", gin.H{"Title": "Log study", "Form": form, "Subjects": subjects})
		return
	}

	errs := map[string]string{}
	if err := c.ShouldBind(&form); err != nil {
		errs = fieldErrors(err)
	}
	minutes := 0
	if _, missing := errs["DurationMinutes"]; !missing {
		var msg string
		if minutes, msg = parseMinutes(form.DurationMinutes); msg != "" {
			errs["DurationMinutes"] = msg
		}
	}
	if len(errs) > 0 {
		h.render(c, http.StatusUnprocessableEntity, "log_study.html", gin.H{
			"Title":    "Log study",
			"Form":     form,
			"Subjects": subjects,
			"Errors":   errs,
		})
		return
	}

	session, err := h.store.LogStudySession(ctx, user.ID, form.Subject, minutes, form.Notes)
	if errors.Is(err, db.ErrNotFound) {
		flash.Set(c, flash.Danger, "Subject not found.")
		c.Redirect(http.StatusFound, "/log_study")
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to log study session", "user_id", user.ID)
		return
	}

	h.log.V(1).Info("Study session logged", "session_id", session.ID, "subject_id", session.SubjectID, "minutes", minutes)
	flash.Set(c, flash.Success, "Study session logged!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// StudyLog godoc
// @Summary      List the caller's study sessions, newest first
// @Tags         study
// @Produce      html
// @Success      200
// @Router       /study_log [get]
func (h *Handler) StudyLog(c *gin.Context) {
	user := auth.CurrentUser(c)
	sessions, err := h.store.ListStudySessions(c.Request.Context(), user.ID)
	if err != nil {
		h.fail(c, err, "Failed to fetch study log", "user_id", user.ID)
		return
	}

	total := 0
	for _, s := range sessions {
		total += s.DurationMinutes
	}
	h.render(c, http.StatusOK, "study_log.html", gin.H{
		"Title":        "Study log",
		"Sessions":     sessions,
		"TotalMinutes": total,
	})
}

// ExportStudyLog godoc
// @Summary      Download the caller's study log as a spreadsheet
// @Tags         study
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /study_log/export [get]
func (h *Handler) ExportStudyLog(c *gin.Context) {
	user := auth.CurrentUser(c)
	sessions, err := h.store.ListStudySessions(c.Request.Context(), user.ID)
	if err != nil {
		h.fail(c, err, "Failed to fetch study log", "user_id", user.ID)
		return
	}

	var buf bytes.Buffer
	if err := excel.WriteStudyLog(&buf, sessions); err != nil {
		h.fail(c, err, "Failed to build spreadsheet", "user_id", user.ID)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="study_log.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
