package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/google/uuid"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	userRepo         portsrepo.UserReader
}

// NewNotificationService creates the in-app notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, userRepo portsrepo.UserReader) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo, userRepo: userRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func newNotification(userID, title, message string, severity domain.NotificationSeverity, actionURL string, payload map[string]any) domain.Notification {
	return domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Title:          title,
		Message:        message,
		Severity:       severity,
		ActionURL:      actionURL,
		Payload:        payload,
		CreatedAt:      time.Now(),
	}
}

// Notify creates one notification. Delivery is best-effort: failures are
// logged and never surface to the triggering operation.
func (s *notificationService) Notify(ctx context.Context, userID string, title, message string, severity domain.NotificationSeverity, actionURL string, payload map[string]any) {
	n := newNotification(userID, title, message, severity, actionURL, payload)
	if err := s.notificationRepo.SaveNotifications(ctx, []domain.Notification{n}); err != nil {
		s.LogError(ctx, err, "Failed to save notification", "user_id", userID, "title", title)
	}
}

// NotifyAdmins fans one notification out to every approved admin.
func (s *notificationService) NotifyAdmins(ctx context.Context, title, message string, severity domain.NotificationSeverity, actionURL string, payload map[string]any) {
	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list admins for notification fan-out", "title", title)
		return
	}
	if len(admins) == 0 {
		return
	}

	notifications := make([]domain.Notification, len(admins))
	for i, admin := range admins {
		notifications[i] = newNotification(admin.UserID, title, message, severity, actionURL, payload)
	}
	if err := s.notificationRepo.SaveNotifications(ctx, notifications); err != nil {
		s.LogError(ctx, err, "Failed to save admin notifications", "title", title, "admins", len(admins))
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string, filter string, page, perPage int) ([]domain.Notification, int, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}

	repoFilter := portsrepo.NotificationFilter(filter)
	switch repoFilter {
	case portsrepo.NotificationFilterAll, portsrepo.NotificationFilterRead, portsrepo.NotificationFilterUnread:
	case "":
		repoFilter = portsrepo.NotificationFilterAll
	default:
		repoFilter = portsrepo.NotificationFilterAll
	}

	notifications, err := s.notificationRepo.FindNotifications(ctx, userID, repoFilter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return notifications, unread, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, notificationID string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID, time.Now())
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	marked, err := s.notificationRepo.MarkAllRead(ctx, userID, time.Now())
	if err != nil {
		return 0, err
	}
	s.LogInfo(ctx, "Marked notifications read", "user_id", userID, "count", marked)
	return marked, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID string, notificationID string) error {
	return s.notificationRepo.DeleteNotification(ctx, notificationID, userID)
}
