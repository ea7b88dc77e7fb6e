package entity

import "github.com/google/uuid"

// Dispatch outcomes recorded in the reminder log.
const (
	StatusSent    = "sent"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// ReminderLog is one dispatch attempt. Rows are append-only; the scheduler
// never updates or deletes them.
type ReminderLog struct {
	ID      int64     `db:"id" json:"id"`
	EventID uuid.UUID `db:"event_id" json:"eventId"`
	Channel string    `db:"channel" json:"channel"`
	SentAt  string    `db:"sent_at" json:"sentAt"`
	Status  string    `db:"status" json:"status"`
	Details *string   `db:"details" json:"details,omitempty"`
}
