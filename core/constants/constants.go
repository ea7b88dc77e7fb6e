package constants

import "time"

// Database settings. SQLite keeps a single writer, so the pool stays small.
const (
	DatabaseMaxOpenConns    = 4
	DatabaseMaxIdleConns    = 2
	DatabaseConnMaxLifetime = 30 // in minutes
	DatabaseBusyTimeout     = 5000
)

// Reminder scheduler settings.
const (
	ReminderCronSpec       = "* * * * *" // one scan per minute
	ReminderWindowBefore   = 5 * time.Minute
	ReminderWindowAfter    = 65 * time.Minute
	ReminderDedupLookback  = 24 * time.Hour
	ReminderLogDefaultSize = 100
)

// Reminder channels.
const (
	ChannelEmail = "email"
	ChannelPush  = "push"
)

// Upload settings.
const (
	UploadsPhotoSubdir = "photos"
	UploadFileIDLength = 9
)
