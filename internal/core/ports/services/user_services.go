package services

import (
	"context"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by e-mail.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves users matching the admin list filters.
	ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register creates a new account. Accounts whose e-mail carries the
	// company suffix are approved immediately and get a current-year ledger
	// row; everyone else starts pending. The boolean reports auto-approval.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, bool, error)

	// UpdateProfile updates the caller's own profile fields.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// ChangePassword verifies the current password and sets a new one.
	ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error
}

// UserLifecycleSvc defines the admin-side approval lifecycle. Approve and
// Reject act on pending accounts only; Deactivate and Reactivate toggle
// approved accounts.
type UserLifecycleSvc interface {
	ApproveUser(ctx context.Context, adminID string, userID string) (*domain.User, error)
	RejectUser(ctx context.Context, adminID string, userID string) (*domain.User, error)
	DeactivateUser(ctx context.Context, adminID string, userID string) (*domain.User, error)
	ReactivateUser(ctx context.Context, adminID string, userID string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with e-mail and password.
	// Returns apperrors.ErrUnauthorized on bad credentials and
	// apperrors.ErrForbidden when the account is not approved.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// LoginOrRegisterGoogle authenticates a user by a verified Google
	// identity, registering the account under the usual approval rule when
	// it does not exist yet.
	LoginOrRegisterGoogle(ctx context.Context, email, name string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
