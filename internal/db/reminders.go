package db

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/in-nis/studytrack/internal/models"
)

func (s *Store) CreateReminder(ctx context.Context, r *models.Reminder) error {
	return translate(s.db.WithContext(ctx).Create(r).Error)
}

// ListReminders returns the user's reminders, soonest first.
func (s *Store) ListReminders(ctx context.Context, userID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("remind_time").Order("id").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (s *Store) GetReminder(ctx context.Context, id uint) (*models.Reminder, error) {
	var r models.Reminder
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

// CompleteDueReminders loads every reminder with remind_time <= now that is
// not done yet, calls visit for each and marks it done. The whole pass runs
// in one transaction; a failing visit or update rolls back the pass.
func (s *Store) CompleteDueReminders(ctx context.Context, now time.Time, visit func(models.Reminder)) (int, error) {
	var fired int
	err := s.Transaction(ctx, func(tx *Store) error {
		var due []models.Reminder
		q := tx.db.WithContext(ctx).
			Where("remind_time <= ? AND is_done = ?", now, false).
			Order("remind_time").Order("id")
		if tx.db.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
		}
		if err := q.Find(&due).Error; err != nil {
			return err
		}

		for _, r := range due {
			if visit != nil {
				visit(r)
			}
			res := tx.db.WithContext(ctx).Model(&models.Reminder{}).
				Where("id = ? AND is_done = ?", r.ID, false).
				Update("is_done", true)
			if res.Error != nil {
				return res.Error
			}
			fired += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return fired, nil
}
