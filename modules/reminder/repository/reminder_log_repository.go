package repository

import (
	"context"
	"time"

	"romantic-api/core/database"
	"romantic-api/core/logger"
	"romantic-api/modules/reminder/entity"

	"github.com/google/uuid"
)

type ReminderLogRepository interface {
	Append(ctx context.Context, entry *entity.ReminderLog) error
	HasRecentEntry(ctx context.Context, eventID uuid.UUID, channel string, since time.Time) (bool, error)
	Recent(ctx context.Context, limit int) ([]entity.ReminderLog, error)
}

type reminderLogRepository struct {
	db database.IDatabase
}

func NewReminderLogRepository(db database.IDatabase) ReminderLogRepository {
	return &reminderLogRepository{db: db}
}

func (r *reminderLogRepository) Append(ctx context.Context, entry *entity.ReminderLog) error {
	query := `
		INSERT INTO reminder_log (event_id, channel, sent_at, status, details)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.EventID, entry.Channel, entry.SentAt, entry.Status, entry.Details,
	).Scan(&entry.ID)
	if err != nil {
		logger.Error("ReminderLogRepository:Append:Error", "error", err)
	}
	return err
}

// HasRecentEntry reports whether any dispatch attempt, regardless of status,
// was recorded for (eventID, channel) at or after since.
func (r *reminderLogRepository) HasRecentEntry(ctx context.Context, eventID uuid.UUID, channel string, since time.Time) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM reminder_log
			WHERE event_id = ? AND channel = ? AND datetime(sent_at) >= datetime(?)
		)
	`
	err := r.db.GetContext(ctx, &exists, query,
		eventID, channel, since.UTC().Format(time.RFC3339))
	if err != nil {
		logger.Error("ReminderLogRepository:HasRecentEntry:Error", "error", err)
		return false, err
	}
	return exists, nil
}

func (r *reminderLogRepository) Recent(ctx context.Context, limit int) ([]entity.ReminderLog, error) {
	var entries []entity.ReminderLog
	query := `
		SELECT id, event_id, channel, sent_at, status, details
		FROM reminder_log
		ORDER BY datetime(sent_at) DESC, id DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		logger.Error("ReminderLogRepository:Recent:Error", "error", err)
		return nil, err
	}
	return entries, nil
}
