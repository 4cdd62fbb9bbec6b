package models

import "time"

// User owns subjects, study sessions and (optionally) reminders.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Subject is a top-level study category, e.g. "Math".
type Subject struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null;index" json:"name"`
	ExamDate     *time.Time `gorm:"type:date" json:"exam_date,omitempty"`
	ReminderDate *time.Time `json:"reminder_date,omitempty"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

// SyllabusItem is a topic or chapter of a subject.
type SyllabusItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	IsCompleted bool   `gorm:"not null;default:false" json:"is_completed"`
	SubjectID   uint   `gorm:"not null;index" json:"subject_id"`

	Subject *Subject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

// StudySession keeps the subject label as typed plus the resolved subject id.
type StudySession struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Subject         string    `gorm:"size:100;not null" json:"subject"`
	SubjectID       uint      `gorm:"not null;index" json:"subject_id"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

// Reminder is a standalone due-time notice picked up by the reminder poller.
// It is unrelated to Subject.ReminderDate.
type Reminder struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	RemindTime  time.Time `gorm:"not null;index" json:"remind_time"`
	IsDone      bool      `gorm:"not null;default:false;index" json:"is_done"`
	UserID      *uint     `gorm:"index" json:"user_id,omitempty"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}

// Session is the server-side half of a login; the cookie only carries its id.
type Session struct {
	ID        string    `gorm:"primaryKey;size:32"`
	UserID    uint      `gorm:"not null;index"`
	Remember  bool      `gorm:"not null;default:false"`
	Revoked   bool      `gorm:"not null;default:false;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time

	User *User `gorm:"constraint:OnDelete:CASCADE;"`
}

// Active reports whether the session can still authenticate requests at now.
func (s Session) Active(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}

// All returns every model managed by migrations, in dependency order.
func All() []interface{} {
	return []interface{}{&User{}, &Subject{}, &SyllabusItem{}, &StudySession{}, &Reminder{}, &Session{}}
}
