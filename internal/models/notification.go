package models

import (
	"database/sql"
	"time"
)

// Notification is the database row shape for the notifications table.
// Payload holds the raw jsonb bytes; unmarshalling happens in the repository.
type Notification struct {
	NotificationID string         `db:"notification_id"`
	UserID         string         `db:"user_id"`
	Title          string         `db:"title"`
	Message        string         `db:"message"`
	Severity       string         `db:"severity"`
	Read           bool           `db:"read"`
	ReadAt         sql.NullTime   `db:"read_at"`
	ActionURL      sql.NullString `db:"action_url"`
	Payload        []byte         `db:"payload"`
	CreatedAt      time.Time      `db:"created_at"`
}
