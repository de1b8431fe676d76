package domain

import "time"

// NotificationSeverity tags an inbox entry for display.
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeveritySuccess NotificationSeverity = "success"
	SeverityWarning NotificationSeverity = "warning"
	SeverityError   NotificationSeverity = "error"
)

// Notification is a per-user inbox entry created by workflow events.
type Notification struct {
	NotificationID string               `json:"notificationID"`
	UserID         string               `json:"userID"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	Severity       NotificationSeverity `json:"severity"`
	Read           bool                 `json:"read"`
	ReadAt         *time.Time           `json:"readAt,omitempty"`
	ActionURL      string               `json:"actionURL,omitempty"`
	Payload        map[string]any       `json:"payload,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}
