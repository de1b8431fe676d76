package repositories

import (
	"context"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// ListUsersFilter narrows FindUsers results. Zero values mean "no filter".
type ListUsersFilter struct {
	Status     domain.UserStatus
	Department string
	Search     string // matches name or email, case-insensitive
	Limit      int
	Offset     int
}

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by e-mail (case-insensitive).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves users matching the filter, newest first.
	FindUsers(ctx context.Context, filter ListUsersFilter) ([]domain.User, error)

	// FindAdmins retrieves all approved admin users.
	FindAdmins(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// e-mail is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateUserStatus moves a user through the approval lifecycle.
	UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
