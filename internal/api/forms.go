package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
	// Browsers submit datetime-local inputs in this shape.
	dateTimeLocalLayout = "2006-01-02T15:04"
)

var registerOnce sync.Once

// registerValidators adds the custom tags used by the forms to gin's
// validator. "notblank" rejects values made only of whitespace.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	})
}

type RegisterForm struct {
	Username string `form:"username" binding:"required,notblank,min=3,max=64"`
	Email    string `form:"email" binding:"required,email,max=120"`
	Password string `form:"password" binding:"required,min=6"`
	Confirm  string `form:"confirm" binding:"required,eqfield=Password"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Remember string `form:"remember"`
	Next     string `form:"next"`
}

// RememberMe interprets the checkbox value.
func (f LoginForm) RememberMe() bool {
	switch strings.ToLower(f.Remember) {
	case "", "0", "false", "off", "n", "no":
		return false
	}
	return true
}

type SubjectForm struct {
	Name     string `form:"name" binding:"required,notblank,max=100"`
	ExamDate string `form:"exam_date"`
}

type TopicForm struct {
	Title string `form:"title" binding:"required,notblank,max=200"`
}

type StudySessionForm struct {
	Subject         string `form:"subject" binding:"required,notblank,max=100"`
	DurationMinutes string `form:"duration_minutes" binding:"required"`
	Notes           string `form:"notes"`
}

type ReminderForm struct {
	Title       string `form:"title" binding:"required,notblank,max=150"`
	Description string `form:"description"`
	RemindTime  string `form:"remind_time" binding:"required"`
}

type SetReminderForm struct {
	RemindTime string `form:"remind_time" binding:"required"`
}

// fieldErrors maps a binding error to per-field messages keyed by struct
// field name.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["Form"] = "Invalid form submission."
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "min":
		return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "eqfield":
		return "Field must be equal to password."
	default:
		return "Invalid value."
	}
}

const (
	msgInvalidDate     = "Not a valid date value."
	msgInvalidDateTime = "Not a valid datetime value."
	msgInvalidInteger  = "Not a valid integer value."
	msgNotPositive     = "Duration must be a positive number of minutes."
)

func parseDate(raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// parseDateTime accepts "YYYY-MM-DD HH:MM" or the datetime-local form and
// treats the value as UTC.
func parseDateTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{dateTimeLayout, dateTimeLocalLayout} {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseMinutes returns the duration or the message to show next to the field.
func parseMinutes(raw string) (int, string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, msgInvalidInteger
	}
	if n <= 0 {
		return 0, msgNotPositive
	}
	return n, ""
}
