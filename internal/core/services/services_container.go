package services

import (
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.MailerSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Notification = NewNotificationService(repos.NotificationRepo, repos.UserRepo)
	container.Balance = NewBalanceService(repos.BalanceRepo, cfg.LeaveDefaults)
	container.User = NewUserService(repos.UserRepo, container.Balance, container.Notification, cfg)
	container.Leave = NewLeaveService(repos.ApplicationRepo, repos.UserRepo, container.Balance, container.Notification, mailer)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleAuth = NewGoogleAuthService(cfg)

	return container
}
