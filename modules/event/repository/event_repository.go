package repository

import (
	"context"
	"database/sql"
	"time"

	"romantic-api/core/database"
	"romantic-api/core/logger"
	"romantic-api/modules/event/entity"

	"github.com/google/uuid"
)

const eventColumns = `id, title, start, "end", notes, tag, reminder_method, reminder_minutes, created_at, updated_at`

type EventRepository interface {
	List(ctx context.Context) ([]entity.CalendarEvent, error)
	Find(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error)
	Create(ctx context.Context, event *entity.CalendarEvent) error
	Update(ctx context.Context, event *entity.CalendarEvent) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListReminderCandidates returns events with a reminder configured whose
	// start time falls inside [windowStart, windowEnd].
	ListReminderCandidates(ctx context.Context, windowStart, windowEnd time.Time) ([]entity.CalendarEvent, error)
}

type eventRepository struct {
	db database.IDatabase
}

func NewEventRepository(db database.IDatabase) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context) ([]entity.CalendarEvent, error) {
	var events []entity.CalendarEvent
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY datetime(start) ASC`
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		logger.Error("EventRepository:List:Error", "error", err)
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Find(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error) {
	var event entity.CalendarEvent
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:Find:Error", "error", err)
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.CalendarEvent) error {
	now := time.Now().UTC().Format(time.RFC3339)
	event.CreatedAt = now
	event.UpdatedAt = now

	query := `
		INSERT INTO events (id, title, start, "end", notes, tag, reminder_method, reminder_minutes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.Start, event.End, event.Notes, event.Tag,
		event.ReminderMethod, event.ReminderMinutes, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		logger.Error("EventRepository:Create:Error", "error", err)
	}
	return err
}

func (r *eventRepository) Update(ctx context.Context, event *entity.CalendarEvent) error {
	event.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	query := `
		UPDATE events SET
			title = ?, start = ?, "end" = ?, notes = ?, tag = ?,
			reminder_method = ?, reminder_minutes = ?, updated_at = ?
		WHERE id = ?
	`
	err := r.db.ExecContext(ctx, query,
		event.Title, event.Start, event.End, event.Notes, event.Tag,
		event.ReminderMethod, event.ReminderMinutes, event.UpdatedAt, event.ID,
	)
	if err != nil {
		logger.Error("EventRepository:Update:Error", "error", err)
	}
	return err
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// reminder_log rows cascade with the event.
	err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		logger.Error("EventRepository:Delete:Error", "error", err)
	}
	return err
}

func (r *eventRepository) ListReminderCandidates(ctx context.Context, windowStart, windowEnd time.Time) ([]entity.CalendarEvent, error) {
	var events []entity.CalendarEvent
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE reminder_method IS NOT NULL
		  AND reminder_minutes IS NOT NULL
		  AND datetime(start) BETWEEN datetime(?) AND datetime(?)
	`
	err := r.db.SelectContext(ctx, &events, query,
		windowStart.UTC().Format(time.RFC3339), windowEnd.UTC().Format(time.RFC3339))
	if err != nil {
		logger.Error("EventRepository:ListReminderCandidates:Error", "error", err)
		return nil, err
	}
	return events, nil
}
