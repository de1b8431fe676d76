package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	db *pgxpool.Pool
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{db: db}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

const notificationColumns = `notification_id, user_id, title, message, severity, read, read_at, action_url, payload, created_at`

func toModelNotification(d domain.Notification) (models.Notification, error) {
	m := models.Notification{
		NotificationID: d.NotificationID,
		UserID:         d.UserID,
		Title:          d.Title,
		Message:        d.Message,
		Severity:       string(d.Severity),
		Read:           d.Read,
		CreatedAt:      d.CreatedAt,
	}
	if d.ReadAt != nil {
		m.ReadAt.Time = *d.ReadAt
		m.ReadAt.Valid = true
	}
	if d.ActionURL != "" {
		m.ActionURL.String = d.ActionURL
		m.ActionURL.Valid = true
	}
	if d.Payload != nil {
		payload, err := json.Marshal(d.Payload)
		if err != nil {
			return models.Notification{}, fmt.Errorf("failed to marshal notification payload: %w", err)
		}
		m.Payload = payload
	}
	return m, nil
}

func toDomainNotification(m models.Notification) (domain.Notification, error) {
	d := domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Title:          m.Title,
		Message:        m.Message,
		Severity:       domain.NotificationSeverity(m.Severity),
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
	if m.ReadAt.Valid {
		readAt := m.ReadAt.Time
		d.ReadAt = &readAt
	}
	if m.ActionURL.Valid {
		d.ActionURL = m.ActionURL.String
	}
	if len(m.Payload) > 0 {
		if err := json.Unmarshal(m.Payload, &d.Payload); err != nil {
			return domain.Notification{}, fmt.Errorf("failed to unmarshal notification payload: %w", err)
		}
	}
	return d, nil
}

func (r *PgxNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	batch := &pgx.Batch{}
	for _, n := range notifications {
		m, err := toModelNotification(n)
		if err != nil {
			return err
		}
		batch.Queue(query,
			m.NotificationID, m.UserID, m.Title, m.Message, m.Severity,
			m.Read, m.ReadAt, m.ActionURL, m.Payload, m.CreatedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert notification batch: %w", err)
		}
	}
	return nil
}

func (r *PgxNotificationRepository) FindNotifications(ctx context.Context, userID string, filter portsrepo.NotificationFilter, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	builder := psql.Select(
		"notification_id", "user_id", "title", "message", "severity",
		"read", "read_at", "action_url", "payload", "created_at",
	).
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	switch filter {
	case portsrepo.NotificationFilterRead:
		builder = builder.Where(sq.Eq{"read": true})
	case portsrepo.NotificationFilterUnread:
		builder = builder.Where(sq.Eq{"read": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var m models.Notification
		err := rows.Scan(
			&m.NotificationID, &m.UserID, &m.Title, &m.Message, &m.Severity,
			&m.Read, &m.ReadAt, &m.ActionURL, &m.Payload, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		d, err := toDomainNotification(m)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", rows.Err())
	}

	return notifications, nil
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT count(*) FROM notifications WHERE user_id = $1 AND read = false;`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID string, userID string, readAt time.Time) error {
	query := `
		UPDATE notifications
		SET read = true, read_at = $1
		WHERE notification_id = $2 AND user_id = $3 AND read = false;
	`
	cmdTag, err := r.db.Exec(ctx, query, readAt, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either not the caller's notification or already read.
		return r.ensureNotificationExists(ctx, notificationID, userID)
	}
	return nil
}

// ensureNotificationExists distinguishes "already read" (a no-op) from
// "not found / not yours".
func (r *PgxNotificationRepository) ensureNotificationExists(ctx context.Context, notificationID string, userID string) error {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM notifications WHERE notification_id = $1 AND user_id = $2);`
	if err := r.db.QueryRow(ctx, query, notificationID, userID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check notification existence: %w", err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID string, readAt time.Time) (int64, error) {
	query := `
		UPDATE notifications
		SET read = true, read_at = $1
		WHERE user_id = $2 AND read = false;
	`
	cmdTag, err := r.db.Exec(ctx, query, readAt, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID string, userID string) error {
	query := `DELETE FROM notifications WHERE notification_id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
