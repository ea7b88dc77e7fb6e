package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"romantic-api/core/database"
	"romantic-api/modules/reminder/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) database.IDatabase {
	t.Helper()
	db, err := database.InitDB(database.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &db
}

func insertEvent(t *testing.T, db database.IDatabase, id uuid.UUID) {
	t.Helper()
	now := time.Now().UTC().Format(time.RFC3339)
	err := db.ExecContext(context.Background(), `
		INSERT INTO events (id, title, start, "end", notes, tag, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, "Picnic", now, now, "", "", now, now)
	require.NoError(t, err)
}

func logEntry(eventID uuid.UUID, channel, status string, sentAt time.Time) *entity.ReminderLog {
	return &entity.ReminderLog{
		EventID: eventID,
		Channel: channel,
		SentAt:  sentAt.UTC().Format(time.RFC3339),
		Status:  status,
	}
}

func TestAppendAssignsID(t *testing.T) {
	db := newTestDB(t)
	repo := NewReminderLogRepository(db)
	eventID := uuid.New()
	insertEvent(t, db, eventID)

	details := "connection refused"
	entry := logEntry(eventID, "email", entity.StatusFailed, time.Now())
	entry.Details = &details

	require.NoError(t, repo.Append(context.Background(), entry))
	assert.NotZero(t, entry.ID)

	entries, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, eventID, entries[0].EventID)
	assert.Equal(t, entity.StatusFailed, entries[0].Status)
	require.NotNil(t, entries[0].Details)
	assert.Equal(t, details, *entries[0].Details)
}

func TestHasRecentEntryLookback(t *testing.T) {
	db := newTestDB(t)
	repo := NewReminderLogRepository(db)
	ctx := context.Background()

	eventID := uuid.New()
	insertEvent(t, db, eventID)
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.Append(ctx, logEntry(eventID, "email", entity.StatusSent, now.Add(-23*time.Hour))))

	since := now.Add(-24 * time.Hour)

	recent, err := repo.HasRecentEntry(ctx, eventID, "email", since)
	require.NoError(t, err)
	assert.True(t, recent)

	// Other channels and other events do not count.
	recent, err = repo.HasRecentEntry(ctx, eventID, "push", since)
	require.NoError(t, err)
	assert.False(t, recent)

	recent, err = repo.HasRecentEntry(ctx, uuid.New(), "email", since)
	require.NoError(t, err)
	assert.False(t, recent)
}

func TestHasRecentEntryBoundaryAndExpiry(t *testing.T) {
	db := newTestDB(t)
	repo := NewReminderLogRepository(db)
	ctx := context.Background()

	eventID := uuid.New()
	insertEvent(t, db, eventID)
	now := time.Now().UTC().Truncate(time.Second)

	// Exactly at the lookback boundary still counts.
	require.NoError(t, repo.Append(ctx, logEntry(eventID, "email", entity.StatusSkipped, now.Add(-24*time.Hour))))

	recent, err := repo.HasRecentEntry(ctx, eventID, "email", now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.True(t, recent)

	// One second beyond it does not.
	recent, err = repo.HasRecentEntry(ctx, eventID, "email", now.Add(-24*time.Hour).Add(time.Second))
	require.NoError(t, err)
	assert.False(t, recent)
}

func TestHasRecentEntryCountsAnyStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewReminderLogRepository(db)
	ctx := context.Background()

	eventID := uuid.New()
	insertEvent(t, db, eventID)
	now := time.Now().UTC()

	require.NoError(t, repo.Append(ctx, logEntry(eventID, "email", entity.StatusFailed, now)))

	recent, err := repo.HasRecentEntry(ctx, eventID, "email", now.Add(-time.Hour))
	require.NoError(t, err)
	assert.True(t, recent)
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewReminderLogRepository(db)
	ctx := context.Background()

	eventID := uuid.New()
	insertEvent(t, db, eventID)
	base := time.Now().UTC().Truncate(time.Second)

	oldest := logEntry(eventID, "email", entity.StatusSent, base.Add(-2*time.Hour))
	middle := logEntry(eventID, "push", entity.StatusSkipped, base.Add(-time.Hour))
	newest := logEntry(eventID, "email", entity.StatusFailed, base)
	for _, e := range []*entity.ReminderLog{oldest, middle, newest} {
		require.NoError(t, repo.Append(ctx, e))
	}

	entries, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newest.ID, entries[0].ID)
	assert.Equal(t, middle.ID, entries[1].ID)
}
