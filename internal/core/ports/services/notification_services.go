package services

import (
	"context"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// NotificationSvcFacade defines the in-app notification operations.
// Notify and NotifyAdmins are best-effort: delivery failures are logged and
// never propagate to the caller.
type NotificationSvcFacade interface {
	// Notify creates one notification for a user.
	Notify(ctx context.Context, userID string, title, message string, severity domain.NotificationSeverity, actionURL string, payload map[string]any)

	// NotifyAdmins fans one notification out to every admin.
	NotifyAdmins(ctx context.Context, title, message string, severity domain.NotificationSeverity, actionURL string, payload map[string]any)

	// ListNotifications returns a page of the user's notifications together
	// with their unread total.
	ListNotifications(ctx context.Context, userID string, filter string, page, perPage int) ([]domain.Notification, int, error)

	// UnreadCount returns the user's unread total.
	UnreadCount(ctx context.Context, userID string) (int, error)

	// MarkRead marks one of the user's notifications as read.
	MarkRead(ctx context.Context, userID string, notificationID string) error

	// MarkAllRead marks all of the user's unread notifications as read and
	// returns how many were marked.
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	// DeleteNotification removes one of the user's notifications.
	DeleteNotification(ctx context.Context, userID string, notificationID string) error
}
