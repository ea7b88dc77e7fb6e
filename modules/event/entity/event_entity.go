package entity

import (
	"database/sql"

	"github.com/google/uuid"
)

// CalendarEvent is one row of the events table. Timestamps are RFC3339 UTC
// text, the storage convention used across the schema.
type CalendarEvent struct {
	ID              uuid.UUID      `db:"id"`
	Title           string         `db:"title"`
	Start           string         `db:"start"`
	End             string         `db:"end"`
	Notes           string         `db:"notes"`
	Tag             string         `db:"tag"`
	ReminderMethod  sql.NullString `db:"reminder_method"`
	ReminderMinutes sql.NullInt64  `db:"reminder_minutes"`
	CreatedAt       string         `db:"created_at"`
	UpdatedAt       string         `db:"updated_at"`
}

// HasReminder reports whether both reminder columns are set.
func (e *CalendarEvent) HasReminder() bool {
	return e.ReminderMethod.Valid && e.ReminderMinutes.Valid
}
