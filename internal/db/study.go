package db

import (
	"context"
	"fmt"

	"github.com/in-nis/studytrack/internal/models"
)

// LogStudySession resolves subjectName among the user's subjects and records
// a session against it. Returns ErrNotFound when no subject matches.
func (s *Store) LogStudySession(ctx context.Context, userID uint, subjectName string, minutes int, notes string) (*models.StudySession, error) {
	var session *models.StudySession
	err := s.Transaction(ctx, func(tx *Store) error {
		subject, err := tx.FindSubjectByName(ctx, userID, subjectName)
		if err != nil {
			return fmt.Errorf("subject %q: %w", subjectName, err)
		}

		session = &models.StudySession{
			Subject:         subject.Name,
			SubjectID:       subject.ID,
			DurationMinutes: minutes,
			Notes:           notes,
			UserID:          userID,
		}
		return translate(tx.db.WithContext(ctx).Create(session).Error)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// ListStudySessions returns the user's sessions, newest first.
func (s *Store) ListStudySessions(ctx context.Context, userID uint) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
