package services

import (
	"context"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// MailerSvc is the outbound e-mail port. Implementations may be no-ops when
// no relay is configured; callers dispatch in goroutines and treat failures
// as log-only.
type MailerSvc interface {
	// SendNewApplication mails the admins about a freshly submitted application.
	SendNewApplication(ctx context.Context, to []string, app *domain.LeaveApplication) error

	// SendStatusUpdate mails the employee about a decision on their application.
	SendStatusUpdate(ctx context.Context, to string, app *domain.LeaveApplication) error
}
