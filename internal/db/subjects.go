package db

import (
	"context"
	"time"

	"github.com/in-nis/studytrack/internal/models"
)

func (s *Store) CreateSubject(ctx context.Context, subject *models.Subject) error {
	return translate(s.db.WithContext(ctx).Create(subject).Error)
}

func (s *Store) GetSubject(ctx context.Context, id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return nil, translate(err)
	}
	return &subject, nil
}

// ListSubjectsByOwner returns the user's subjects in creation order.
func (s *Store) ListSubjectsByOwner(ctx context.Context, userID uint) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

// FindSubjectByName matches name exactly, scoped to the owner.
func (s *Store) FindSubjectByName(ctx context.Context, userID uint, name string) (*models.Subject, error) {
	var subject models.Subject
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		Order("id").
		First(&subject).Error
	if err != nil {
		return nil, translate(err)
	}
	return &subject, nil
}

func (s *Store) SetSubjectReminder(ctx context.Context, id uint, at time.Time) error {
	res := s.db.WithContext(ctx).Model(&models.Subject{}).Where("id = ?", id).Update("reminder_date", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CreateSyllabusItem(ctx context.Context, item *models.SyllabusItem) error {
	return translate(s.db.WithContext(ctx).Create(item).Error)
}

func (s *Store) GetSyllabusItem(ctx context.Context, id uint) (*models.SyllabusItem, error) {
	var item models.SyllabusItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *Store) ListSyllabusItems(ctx context.Context, subjectID uint) ([]models.SyllabusItem, error) {
	var items []models.SyllabusItem
	if err := s.db.WithContext(ctx).Where("subject_id = ?", subjectID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CompleteSyllabusItem sets is_completed; it never clears it.
func (s *Store) CompleteSyllabusItem(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&models.SyllabusItem{}).
		Where("id = ?", id).
		Update("is_completed", true).Error
}
