// Package mail implements the outbound e-mail port over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/platform/config"
	gomail "github.com/wneessen/go-mail"
)

// smtpMailer sends workflow e-mails through a configured SMTP relay.
type smtpMailer struct {
	client *gomail.Client
	from   string
}

// noopMailer is used when no relay is configured; sends succeed silently.
type noopMailer struct{}

func (noopMailer) SendNewApplication(context.Context, []string, *domain.LeaveApplication) error {
	return nil
}

func (noopMailer) SendStatusUpdate(context.Context, string, *domain.LeaveApplication) error {
	return nil
}

// NewMailer builds the MailerSvc from SMTP configuration. An empty host
// yields a no-op mailer so the workflow never depends on a relay being
// present.
func NewMailer(cfg config.SMTPConfig) (portssvc.MailerSvc, error) {
	if cfg.Host == "" {
		return noopMailer{}, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &smtpMailer{client: client, from: cfg.From}, nil
}

func (m *smtpMailer) send(ctx context.Context, recipients []string, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(recipients...); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

func (m *smtpMailer) SendNewApplication(ctx context.Context, to []string, app *domain.LeaveApplication) error {
	types := make([]string, len(app.LeaveTypes))
	for i, t := range app.LeaveTypes {
		types[i] = string(t)
	}
	subject := fmt.Sprintf("New leave application from %s", app.EmployeeName)
	body := fmt.Sprintf(
		"%s (%s) has applied for leave.\n\nType: %s\nFrom: %s\nTo: %s\nDays: %d\nReason: %s\n\nPlease review the application in the admin dashboard.\n",
		app.EmployeeName, app.Department,
		strings.Join(types, ", "),
		app.FromDate.Format("2006-01-02"), app.ToDate.Format("2006-01-02"),
		app.Days(), app.Reason,
	)
	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) SendStatusUpdate(ctx context.Context, to string, app *domain.LeaveApplication) error {
	subject := fmt.Sprintf("Your leave application was %s", app.Status)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour leave application from %s to %s has been %s.\n",
		app.EmployeeName,
		app.FromDate.Format("2006-01-02"), app.ToDate.Format("2006-01-02"),
		app.Status,
	)
	if app.AdminComments != "" {
		body += fmt.Sprintf("\nComments: %s\n", app.AdminComments)
	}
	return m.send(ctx, []string{to}, subject, body)
}
