package dto

import (
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// dateLayout is the wire format for leave dates.
const dateLayout = "2006-01-02"

// CreateLeaveApplicationRequest defines the payload for submitting a leave
// application. Dates are inclusive calendar days.
type CreateLeaveApplicationRequest struct {
	LeaveTypes        []string `json:"leaveTypes" binding:"required,min=1"`
	FromDate          string   `json:"fromDate" binding:"required"`
	ToDate            string   `json:"toDate" binding:"required"`
	Reason            string   `json:"reason" binding:"required"`
	EmployeeSignature string   `json:"employeeSignature"`
	ImportantComments string   `json:"importantComments"`
}

// ParseDates parses the request's date strings. ok is false when either
// fails to parse.
func (r CreateLeaveApplicationRequest) ParseDates() (from, to time.Time, ok bool) {
	from, err := time.Parse(dateLayout, r.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(dateLayout, r.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// DecideApplicationRequest defines the payload for an admin decision.
type DecideApplicationRequest struct {
	Status        string `json:"status" binding:"required,oneof=approved rejected"`
	AdminComments string `json:"adminComments"`
}

// LeaveApplicationResponse defines the data returned for an application.
type LeaveApplicationResponse struct {
	ApplicationID     string     `json:"applicationID"`
	EmployeeID        string     `json:"employeeID"`
	EmployeeName      string     `json:"employeeName"`
	Department        string     `json:"department"`
	Designation       string     `json:"designation,omitempty"`
	Contacts          string     `json:"contacts,omitempty"`
	LeaveTypes        []string   `json:"leaveTypes"`
	FromDate          string     `json:"fromDate"`
	ToDate            string     `json:"toDate"`
	Days              int        `json:"days"`
	Reason            string     `json:"reason"`
	EmployeeSignature string     `json:"employeeSignature,omitempty"`
	ImportantComments string     `json:"importantComments,omitempty"`
	Status            string     `json:"status"`
	ApprovedBy        *string    `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time `json:"approvedAt,omitempty"`
	AdminComments     string     `json:"adminComments,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// ToLeaveApplicationResponse converts a domain.LeaveApplication to its DTO.
func ToLeaveApplicationResponse(app *domain.LeaveApplication) LeaveApplicationResponse {
	types := make([]string, len(app.LeaveTypes))
	for i, t := range app.LeaveTypes {
		types[i] = string(t)
	}
	return LeaveApplicationResponse{
		ApplicationID:     app.ApplicationID,
		EmployeeID:        app.EmployeeID,
		EmployeeName:      app.EmployeeName,
		Department:        app.Department,
		Designation:       app.Designation,
		Contacts:          app.Contacts,
		LeaveTypes:        types,
		FromDate:          app.FromDate.Format(dateLayout),
		ToDate:            app.ToDate.Format(dateLayout),
		Days:              app.Days(),
		Reason:            app.Reason,
		EmployeeSignature: app.EmployeeSignature,
		ImportantComments: app.ImportantComments,
		Status:            string(app.Status),
		ApprovedBy:        app.ApprovedBy,
		ApprovedAt:        app.ApprovedAt,
		AdminComments:     app.AdminComments,
		CreatedAt:         app.CreatedAt,
	}
}

// ToLeaveApplicationResponses converts a slice of applications to DTOs.
func ToLeaveApplicationResponses(apps []domain.LeaveApplication) []LeaveApplicationResponse {
	responses := make([]LeaveApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = ToLeaveApplicationResponse(&apps[i])
	}
	return responses
}

// ListApplicationsParams defines query parameters for listing applications.
type ListApplicationsParams struct {
	Status   string `form:"status"`
	Search   string `form:"search"`
	FromDate string `form:"fromDate"`
	ToDate   string `form:"toDate"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}

// CalendarParams defines query parameters for the calendar view.
type CalendarParams struct {
	Year int `form:"year"`
}
