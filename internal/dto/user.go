package dto

import (
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// UserResponse defines the data returned for a user. The password hash never
// leaves the domain layer.
type UserResponse struct {
	UserID           string    `json:"userID"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Department       string    `json:"department"`
	Designation      string    `json:"designation,omitempty"`
	Contacts         string    `json:"contacts,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	EmergencyPhone   string    `json:"emergencyPhone,omitempty"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	ManagerID        *string   `json:"managerID,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:           user.UserID,
		Email:            user.Email,
		Name:             user.Name,
		Department:       user.Department,
		Designation:      user.Designation,
		Contacts:         user.Contacts,
		EmergencyContact: user.EmergencyContact,
		EmergencyPhone:   user.EmergencyPhone,
		Role:             string(user.Role),
		Status:           string(user.Status),
		ManagerID:        user.ManagerID,
		CreatedAt:        user.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain.User to []UserResponse.
func ToUserResponses(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// UpdateProfileRequest defines the self-service updatable fields.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateProfileRequest struct {
	Name             *string `json:"name"`
	Contacts         *string `json:"contacts"`
	EmergencyContact *string `json:"emergencyContact"`
	EmergencyPhone   *string `json:"emergencyPhone"`
}

// ListUsersParams defines query parameters for the admin user list.
type ListUsersParams struct {
	Status     string `form:"status"`
	Department string `form:"department"`
	Search     string `form:"search"`
	Limit      int    `form:"limit,default=50"`
	Offset     int    `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}
