package repositories

import (
	"context"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// NotificationFilter selects notifications by read state.
type NotificationFilter string

const (
	NotificationFilterAll    NotificationFilter = "all"
	NotificationFilterRead   NotificationFilter = "read"
	NotificationFilterUnread NotificationFilter = "unread"
)

// NotificationReader defines read operations for notifications
type NotificationReader interface {
	// FindNotifications retrieves a user's notifications, newest first.
	FindNotifications(ctx context.Context, userID string, filter NotificationFilter, limit, offset int) ([]domain.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID string) (int, error)
}

// NotificationWriter defines write operations for notifications
type NotificationWriter interface {
	// SaveNotifications persists a batch of notifications.
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error

	// MarkRead marks a single notification as read, scoped to its owner.
	MarkRead(ctx context.Context, notificationID string, userID string, readAt time.Time) error

	// MarkAllRead marks every unread notification of a user as read and
	// returns how many rows changed.
	MarkAllRead(ctx context.Context, userID string, readAt time.Time) (int64, error)

	// DeleteNotification removes a notification, scoped to its owner.
	DeleteNotification(ctx context.Context, notificationID string, userID string) error
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
