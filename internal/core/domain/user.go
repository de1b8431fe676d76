package domain

// UserRole defines the possible roles a user can have in the system.
type UserRole string

const (
	RoleEmployee UserRole = "employee"
	RoleAdmin    UserRole = "admin"
)

// UserStatus is the account approval lifecycle state.
// Only approved users may authenticate or submit leave applications.
type UserStatus string

const (
	StatusPending     UserStatus = "pending"
	StatusApproved    UserStatus = "approved"
	StatusRejected    UserStatus = "rejected"
	StatusDeactivated UserStatus = "deactivated"
)

// User represents an employee or admin account.
type User struct {
	UserID           string     `json:"userID"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	Name             string     `json:"name"`
	Department       string     `json:"department"`
	Designation      string     `json:"designation"`
	Contacts         string     `json:"contacts"`
	EmergencyContact string     `json:"emergencyContact"`
	EmergencyPhone   string     `json:"emergencyPhone"`
	Role             UserRole   `json:"role"`
	Status           UserStatus `json:"status"`
	ManagerID        *string    `json:"managerID,omitempty"` // plain back-reference, resolved by lookup
	AuditFields
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsApproved reports whether the account may authenticate and submit applications.
func (u *User) IsApproved() bool {
	return u.Status == StatusApproved
}
