package dto

import (
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string         `json:"notificationID"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Severity       string         `json:"severity"`
	Read           bool           `json:"read"`
	ReadAt         *time.Time     `json:"readAt,omitempty"`
	ActionURL      string         `json:"actionURL,omitempty"`
	Payload        map[string]any `json:"payload,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Title:          n.Title,
		Message:        n.Message,
		Severity:       string(n.Severity),
		Read:           n.Read,
		ReadAt:         n.ReadAt,
		ActionURL:      n.ActionURL,
		Payload:        n.Payload,
		CreatedAt:      n.CreatedAt,
	}
}

// ListNotificationsParams defines query parameters for the inbox listing.
type ListNotificationsParams struct {
	Filter  string `form:"filter,default=all" binding:"omitempty,oneof=all read unread"`
	Page    int    `form:"page,default=1"`
	PerPage int    `form:"per_page,default=20"`
}

// ListNotificationsResponse wraps a page of notifications with the caller's
// unread total.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
	Page          int                    `json:"page"`
	PerPage       int                    `json:"perPage"`
}

// UnreadCountResponse carries just the unread total.
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

// MarkAllReadResponse reports how many notifications were marked.
type MarkAllReadResponse struct {
	Marked int64 `json:"marked"`
}
