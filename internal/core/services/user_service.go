package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/platform/config"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo        portsrepo.UserRepositoryFacade
	balanceSvc      portssvc.BalanceSvcFacade
	notificationSvc portssvc.NotificationSvcFacade
	cfg             *config.Config
}

// NewUserService creates the user directory service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, balanceSvc portssvc.BalanceSvcFacade, notificationSvc portssvc.NotificationSvcFacade, cfg *config.Config) portssvc.UserSvcFacade {
	return &userService{
		userRepo:        userRepo,
		balanceSvc:      balanceSvc,
		notificationSvc: notificationSvc,
		cfg:             cfg,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx, portsrepo.ListUsersFilter{
		Status:     domain.UserStatus(params.Status),
		Department: params.Department,
		Search:     params.Search,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
}

// autoApproves reports whether an e-mail qualifies for immediate approval.
func (s *userService) autoApproves(email string) bool {
	return s.cfg.CompanyEmailSuffix != "" && strings.HasSuffix(strings.ToLower(email), s.cfg.CompanyEmailSuffix)
}

// onUserApproved provisions the side effects of an account becoming
// approved: the current-year ledger row and the in-app notice.
func (s *userService) onUserApproved(ctx context.Context, user *domain.User) {
	if _, err := s.balanceSvc.GetOrCreateBalance(ctx, user.UserID, time.Now().Year()); err != nil {
		s.LogError(ctx, err, "Failed to provision leave balance for approved user", "user_id", user.UserID)
	}
	s.notificationSvc.Notify(ctx, user.UserID,
		"Account approved",
		"Your account has been approved. You can now apply for leave.",
		domain.SeveritySuccess, "/dashboard", nil)
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, bool, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	autoApproved := s.autoApproves(req.Email)
	role := domain.RoleEmployee
	if s.cfg.AdminEmail != "" && strings.ToLower(req.Email) == s.cfg.AdminEmail {
		// The configured admin address bootstraps the first admin account.
		role = domain.RoleAdmin
		autoApproved = true
	}
	status := domain.StatusPending
	if autoApproved {
		status = domain.StatusApproved
	}

	now := time.Now()
	user := domain.User{
		UserID:           uuid.NewString(),
		Email:            strings.ToLower(req.Email),
		PasswordHash:     hash,
		Name:             req.Name,
		Department:       req.Department,
		Designation:      req.Designation,
		Contacts:         req.Contacts,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Role:             role,
		Status:           status,
		AuditFields:      domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, false, err
	}

	if autoApproved {
		s.onUserApproved(ctx, &user)
	} else {
		s.notificationSvc.NotifyAdmins(ctx,
			"New registration pending approval",
			fmt.Sprintf("%s (%s) registered and is awaiting approval.", user.Name, user.Email),
			domain.SeverityInfo, "/admin/users?status=pending",
			map[string]any{"user_id": user.UserID, "department": user.Department})
	}

	s.LogInfo(ctx, "User registered", "user_id", user.UserID, "auto_approved", autoApproved)
	return &user, autoApproved, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	if !user.IsApproved() {
		return nil, fmt.Errorf("account is %s: %w", user.Status, apperrors.ErrForbidden)
	}

	return user, nil
}

func (s *userService) LoginOrRegisterGoogle(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		if !user.IsApproved() {
			return nil, fmt.Errorf("account is %s: %w", user.Status, apperrors.ErrForbidden)
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user for google login: %w", err)
	}

	// First sign-in: register under the usual approval rule. The account
	// has no usable password; Google remains the only way in.
	randomSecret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder secret: %w", err)
	}
	hash, err := utils.HashPassword(randomSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder secret: %w", err)
	}

	autoApproved := s.autoApproves(email)
	status := domain.StatusPending
	if autoApproved {
		status = domain.StatusApproved
	}

	now := time.Now()
	fresh := domain.User{
		UserID:       uuid.NewString(),
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		Name:         name,
		Department:   "Unassigned",
		Role:         domain.RoleEmployee,
		Status:       status,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.userRepo.SaveUser(ctx, fresh); err != nil {
		return nil, err
	}

	if autoApproved {
		s.onUserApproved(ctx, &fresh)
		return &fresh, nil
	}

	s.notificationSvc.NotifyAdmins(ctx,
		"New registration pending approval",
		fmt.Sprintf("%s (%s) signed in with Google and is awaiting approval.", fresh.Name, fresh.Email),
		domain.SeverityInfo, "/admin/users?status=pending",
		map[string]any{"user_id": fresh.UserID})
	return nil, fmt.Errorf("account is pending approval: %w", apperrors.ErrForbidden)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Contacts != nil {
		user.Contacts = *req.Contacts
	}
	if req.EmergencyContact != nil {
		user.EmergencyContact = *req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		user.EmergencyPhone = *req.EmergencyPhone
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	s.LogInfo(ctx, "Password changed", "user_id", userID)
	return nil
}

// transitionStatus moves a user between lifecycle states after verifying the
// caller is an admin and the user is currently in one of the allowed states.
func (s *userService) transitionStatus(ctx context.Context, adminID, userID string, allowed []domain.UserStatus, next domain.UserStatus) (*domain.User, error) {
	admin, err := s.userRepo.FindUserByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !admin.IsAdmin() {
		return nil, fmt.Errorf("admin role required: %w", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	permitted := false
	for _, st := range allowed {
		if user.Status == st {
			permitted = true
			break
		}
	}
	if !permitted {
		return nil, fmt.Errorf("user is %s, cannot move to %s: %w", user.Status, next, apperrors.ErrConflict)
	}

	if err := s.userRepo.UpdateUserStatus(ctx, userID, next); err != nil {
		return nil, err
	}
	user.Status = next
	user.UpdatedAt = time.Now()

	s.LogInfo(ctx, "User status changed", "user_id", userID, "status", string(next), "by", adminID)
	return user, nil
}

func (s *userService) ApproveUser(ctx context.Context, adminID string, userID string) (*domain.User, error) {
	user, err := s.transitionStatus(ctx, adminID, userID, []domain.UserStatus{domain.StatusPending}, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	s.onUserApproved(ctx, user)
	return user, nil
}

func (s *userService) RejectUser(ctx context.Context, adminID string, userID string) (*domain.User, error) {
	user, err := s.transitionStatus(ctx, adminID, userID, []domain.UserStatus{domain.StatusPending}, domain.StatusRejected)
	if err != nil {
		return nil, err
	}
	s.notificationSvc.Notify(ctx, user.UserID,
		"Registration rejected",
		"Your registration was not approved. Contact HR for details.",
		domain.SeverityWarning, "", nil)
	return user, nil
}

func (s *userService) DeactivateUser(ctx context.Context, adminID string, userID string) (*domain.User, error) {
	return s.transitionStatus(ctx, adminID, userID, []domain.UserStatus{domain.StatusApproved}, domain.StatusDeactivated)
}

func (s *userService) ReactivateUser(ctx context.Context, adminID string, userID string) (*domain.User, error) {
	user, err := s.transitionStatus(ctx, adminID, userID, []domain.UserStatus{domain.StatusDeactivated}, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	s.notificationSvc.Notify(ctx, user.UserID,
		"Account reactivated",
		"Your account is active again.",
		domain.SeveritySuccess, "/dashboard", nil)
	return user, nil
}
