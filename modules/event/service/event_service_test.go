package service

import (
	"database/sql"
	"testing"
	"time"

	"romantic-api/core/errors"
	"romantic-api/modules/event/dto"
	"romantic-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRequest(start, end time.Time, reminder *dto.ReminderPayload) *dto.EventRequest {
	return &dto.EventRequest{
		Title:    "Cena de aniversario",
		Start:    start.UTC().Format(time.RFC3339),
		End:      end.UTC().Format(time.RFC3339),
		Notes:    "Reservar mesa",
		Tag:      "cita",
		Reminder: reminder,
	}
}

func TestCheckPayloadAcceptsValidEvent(t *testing.T) {
	now := time.Now()
	req := eventRequest(now.Add(2*time.Hour), now.Add(3*time.Hour),
		&dto.ReminderPayload{Method: "email", MinutesBefore: 30})

	assert.Nil(t, checkPayload(req, now, nil))
}

func TestCheckPayloadRejectsBadTimestamps(t *testing.T) {
	now := time.Now()

	req := eventRequest(now.Add(time.Hour), now.Add(2*time.Hour), nil)
	req.Start = "mañana"
	appErr := checkPayload(req, now, nil)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	req = eventRequest(now.Add(time.Hour), now.Add(2*time.Hour), nil)
	req.End = "2026-13-40"
	appErr = checkPayload(req, now, nil)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestCheckPayloadRejectsEndNotAfterStart(t *testing.T) {
	now := time.Now()
	start := now.Add(time.Hour)

	appErr := checkPayload(eventRequest(start, start, nil), now, nil)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	appErr = checkPayload(eventRequest(start, start.Add(-time.Minute), nil), now, nil)
	require.NotNil(t, appErr)
}

func TestCheckPayloadRejectsReminderThatNoLongerFits(t *testing.T) {
	now := time.Now()

	// Event in 10 minutes, reminder wants 30 minutes of lead.
	req := eventRequest(now.Add(10*time.Minute), now.Add(time.Hour),
		&dto.ReminderPayload{Method: "email", MinutesBefore: 30})
	appErr := checkPayload(req, now, nil)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	// Lead exactly equal to the remaining time is still acceptable.
	req = eventRequest(now.Add(30*time.Minute), now.Add(time.Hour),
		&dto.ReminderPayload{Method: "email", MinutesBefore: 30})
	assert.Nil(t, checkPayload(req, now, nil))
}

func TestCheckPayloadExactFitSurvivesSubsecondNow(t *testing.T) {
	// The request carries second-precision timestamps; a wall clock with a
	// sub-second fraction must not push an exactly-fitting lead over the edge.
	now := time.Now().Truncate(time.Second).Add(700 * time.Millisecond)

	req := eventRequest(now.Truncate(time.Second).Add(30*time.Minute), now.Add(time.Hour),
		&dto.ReminderPayload{Method: "email", MinutesBefore: 30})
	assert.Nil(t, checkPayload(req, now, nil))
}

func TestCheckPayloadAllowsEditsWithUnchangedReminder(t *testing.T) {
	now := time.Now()
	// Stored event whose reminder window opened an hour ago.
	start := now.Add(-time.Hour)
	stored := &entity.CalendarEvent{
		ID:              uuid.New(),
		Start:           start.UTC().Format(time.RFC3339),
		End:             start.Add(2 * time.Hour).UTC().Format(time.RFC3339),
		ReminderMethod:  sql.NullString{String: "email", Valid: true},
		ReminderMinutes: sql.NullInt64{Int64: 30, Valid: true},
	}

	// Editing notes while keeping start and reminder as stored is fine.
	req := eventRequest(start, start.Add(2*time.Hour),
		&dto.ReminderPayload{Method: "email", MinutesBefore: 30})
	req.Notes = "Cambiar el restaurante"
	assert.Nil(t, checkPayload(req, now, stored))

	// Changing the reminder re-runs the fit check against a past start.
	req.Reminder = &dto.ReminderPayload{Method: "email", MinutesBefore: 60}
	appErr := checkPayload(req, now, stored)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	// So does moving the start.
	req = eventRequest(start.Add(time.Minute), start.Add(2*time.Hour),
		&dto.ReminderPayload{Method: "email", MinutesBefore: 30})
	require.NotNil(t, checkPayload(req, now, stored))
}

func TestEntityResponseRoundTrip(t *testing.T) {
	now := time.Now()
	req := eventRequest(now.Add(time.Hour), now.Add(2*time.Hour),
		&dto.ReminderPayload{Method: "push", MinutesBefore: 15})

	event := toEntity(req, uuid.New())
	require.True(t, event.HasReminder())

	resp := toResponse(event)
	assert.Equal(t, req.Title, resp.Title)
	require.NotNil(t, resp.Reminder)
	assert.Equal(t, "push", resp.Reminder.Method)
	assert.Equal(t, 15, resp.Reminder.MinutesBefore)

	req.Reminder = nil
	resp = toResponse(toEntity(req, uuid.New()))
	assert.Nil(t, resp.Reminder)
}
