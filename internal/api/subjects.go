package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/in-nis/studytrack/internal/auth"
	"github.com/in-nis/studytrack/internal/db"
	"github.com/in-nis/studytrack/internal/flash"
	"github.com/in-nis/studytrack/internal/models"
)

// Dashboard godoc
// @Summary      List the caller's subjects
// @Tags         subjects
// @Produce      html
// @Success      200
// @Router       /dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	user := auth.CurrentUser(c)
	subjects, err := h.store.ListSubjectsByOwner(c.Request.Context(), user.ID)
	if err != nil {
		h.fail(c, err, "Failed to fetch subjects", "user_id", user.ID)
		return
	}
	h.render(c, http.StatusOK, "dashboard.html", gin.H{"Title": "Dashboard", "Subjects": subjects})
}

// AddSubject godoc
// @Summary      Create a subject
// @Tags         subjects
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        name       formData  string  true   "Subject name"
// @Param        exam_date  formData  string  false  "Exam date (YYYY-MM-DD)"
// @Success      302
// @Failure      422
// @Router       /add_subject [post]
func (h *Handler) AddSubject(c *gin.Context) {
	var form SubjectForm
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "add_subject.html", gin.H{"Title": "Add subject", "Form": form})
		return
	}

	errs := map[string]string{}
	if err := c.ShouldBind(&form); err != nil {
		errs = fieldErrors(err)
	}
	examDate, ok := parseDate(form.ExamDate)
	if !ok {
		errs["ExamDate"] = msgInvalidDate
	}
	if len(errs) > 0 {
		h.render(c, http.StatusUnprocessableEntity, "add_subject.html", gin.H{"Title": "Add subject", "Form": form, "Errors": errs})
		return
	}

	user := auth.CurrentUser(c)
	subject := models.Subject{Name: form.Name, ExamDate: examDate, UserID: user.ID}
	if err := h.store.CreateSubject(c.Request.Context(), &subject); err != nil {
		h.fail(c, err, "Failed to add subject", "user_id", user.ID)
		return
	}

	flash.Set(c, flash.Success, "Subject added!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// ViewSubject godoc
// @Summary      Show a subject and its syllabus
// @Tags         subjects
// @Produce      html
// @Param        id   path  int  true  "Subject ID"
// @Success      200
// @Failure      302  "Not the owner"
// @Failure      404
// @Router       /subject/{id} [get]
func (h *Handler) ViewSubject(c *gin.Context) {
	subject, _, ok := h.ownedSubject(c)
	if !ok {
		return
	}

	items, err := h.store.ListSyllabusItems(c.Request.Context(), subject.ID)
	if err != nil {
		h.fail(c, err, "Failed to fetch syllabus", "subject_id", subject.ID)
		return
	}

	h.render(c, http.StatusOK, "subject_detail.html", gin.H{
		"Title":    subject.Name,
		"Subject":  subject,
		"Syllabus": items,
	})
}

// AddTopic godoc
// @Summary      Add a syllabus item to a subject
// @Tags         subjects
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id     path      int     true  "Subject ID"
// @Param        title  formData  string  true  "Topic title"
// @Success      302
// @Failure      404
// @Failure      422
// @Router       /subject/{id}/add_topic [post]
func (h *Handler) AddTopic(c *gin.Context) {
	subject, _, ok := h.ownedSubject(c)
	if !ok {
		return
	}

	var form TopicForm
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "add_topic.html", gin.H{"Title": "Add topic", "Subject": subject, "Form": form})
		return
	}

	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "add_topic.html", gin.H{
			"Title":   "Add topic",
			"Subject": subject,
			"Form":    form,
			"Errors":  fieldErrors(err),
		})
		return
	}

	item := models.SyllabusItem{Title: form.Title, SubjectID: subject.ID}
	if err := h.store.CreateSyllabusItem(c.Request.Context(), &item); err != nil {
		h.fail(c, err, "Failed to add topic", "subject_id", subject.ID)
		return
	}

	flash.Set(c, flash.Success, "Topic added!")
	c.Redirect(http.StatusFound, subjectPath(subject.ID))
}

// CompleteTopic godoc
// @Summary      Mark a syllabus item completed
// @Tags         subjects
// @Param        id        path  int  true  "Subject ID"
// @Param        topic_id  path  int  true  "Syllabus item ID"
// @Success      302
// @Failure      404
// @Router       /subject/{id}/topic/{topic_id}/complete [post]
func (h *Handler) CompleteTopic(c *gin.Context) {
	subject, _, ok := h.ownedSubject(c)
	if !ok {
		return
	}
	topicID, ok := paramID(c, "topic_id")
	if !ok {
		h.notFound(c)
		return
	}

	ctx := c.Request.Context()
	item, err := h.store.GetSyllabusItem(ctx, topicID)
	if errors.Is(err, db.ErrNotFound) || (err == nil && item.SubjectID != subject.ID) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to load topic", "topic_id", topicID)
		return
	}

	if !item.IsCompleted {
		if err := h.store.CompleteSyllabusItem(ctx, item.ID); err != nil {
			h.fail(c, err, "Failed to complete topic", "topic_id", item.ID)
			return
		}
	}

	flash.Set(c, flash.Success, "Topic marked as completed.")
	c.Redirect(http.StatusFound, subjectPath(subject.ID))
}

// SetReminder godoc
// @Summary      Set a subject's reminder timestamp
// @Description  GET pre-fills from the stored reminder date. POST overwrites it; no Reminder row is created.
// @Tags         subjects
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id           path      int     true  "Subject ID"
// @Param        remind_time  formData  string  true  "YYYY-MM-DD HH:MM"
// @Success      302
// @Failure      404
// @Failure      422
// @Router       /set_reminder/{id} [post]
func (h *Handler) SetReminder(c *gin.Context) {
	subject, _, ok := h.ownedSubject(c)
	if !ok {
		return
	}

	var form SetReminderForm
	if c.Request.Method == http.MethodGet {
		if subject.ReminderDate != nil {
			form.RemindTime = subject.ReminderDate.UTC().Format(dateTimeLayout)
		}
		h.render(c, http.StatusOK, "set_reminder.html", gin.H{"Title": "Set reminder", "Subject": subject, "Form": form})
		return
	}

	errs := map[string]string{}
	if err := c.ShouldBind(&form); err != nil {
		errs = fieldErrors(err)
	}
	var at time.Time
	if _, missing := errs["RemindTime"]; !missing {
		if at, ok = parseDateTime(form.RemindTime); !ok {
			errs["RemindTime"] = msgInvalidDateTime
		}
	}
	if len(errs) > 0 {
		h.render(c, http.StatusUnprocessableEntity, "set_reminder.html", gin.H{
			"Title":   "Set reminder",
			"Subject": subject,
			"Form":    form,
			"Errors":  errs,
		})
		return
	}

	if err := h.store.SetSubjectReminder(c.Request.Context(), subject.ID, at); err != nil {
		h.fail(c, err, "Failed to set reminder", "subject_id", subject.ID)
		return
	}

	flash.Set(c, flash.Success, "Reminder set successfully!")
	c.Redirect(http.StatusFound, subjectPath(subject.ID))
}

func subjectPath(id uint) string {
	return fmt.Sprintf("/subject/%d", id)
}
