package domain

import "time"

// LeaveType is a selectable leave type label. Five of them are tracked
// against the balance ledger; Unpaid Leave and Other carry no limit.
type LeaveType string

const (
	SickLeave        LeaveType = "Sick Leave"
	PersonalLeave    LeaveType = "Personal Leave"
	MaternityLeave   LeaveType = "Maternity Leave/Paternity Leave"
	StudyLeave       LeaveType = "Study Leave"
	BereavementLeave LeaveType = "Bereavement"
	UnpaidLeave      LeaveType = "Unpaid Leave"
	OtherLeave       LeaveType = "Other"
)

// TrackedLeaveTypes lists the types that consume ledger balance, in display order.
var TrackedLeaveTypes = []LeaveType{SickLeave, PersonalLeave, MaternityLeave, StudyLeave, BereavementLeave}

// Tracked reports whether the type consumes balance from the ledger.
func (t LeaveType) Tracked() bool {
	switch t {
	case SickLeave, PersonalLeave, MaternityLeave, StudyLeave, BereavementLeave:
		return true
	}
	return false
}

// Known reports whether the label is one of the recognised leave types.
func (t LeaveType) Known() bool {
	return t.Tracked() || t == UnpaidLeave || t == OtherLeave
}

// ApplicationStatus is the lifecycle state of a leave application.
// pending is the only non-terminal state: pending -> approved | rejected.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// LeaveApplication is a single leave request with the employee snapshot
// captured at submission time.
type LeaveApplication struct {
	ApplicationID     string            `json:"applicationID"`
	EmployeeID        string            `json:"employeeID"`
	EmployeeName      string            `json:"employeeName"`
	Department        string            `json:"department"`
	Designation       string            `json:"designation"`
	Contacts          string            `json:"contacts"`
	LeaveTypes        []LeaveType       `json:"leaveTypes"`
	FromDate          time.Time         `json:"fromDate"`
	ToDate            time.Time         `json:"toDate"`
	Reason            string            `json:"reason"`
	EmployeeSignature string            `json:"employeeSignature,omitempty"`
	ImportantComments string            `json:"importantComments,omitempty"`
	Status            ApplicationStatus `json:"status"`
	ApprovedBy        *string           `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time        `json:"approvedAt,omitempty"`
	AdminComments     string            `json:"adminComments,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// Days returns the inclusive day count of the requested range.
func (a *LeaveApplication) Days() int {
	return int(a.ToDate.Sub(a.FromDate).Hours()/24) + 1
}

// Overlaps reports whether the application's inclusive range intersects [from, to].
func (a *LeaveApplication) Overlaps(from, to time.Time) bool {
	return !a.FromDate.After(to) && !a.ToDate.Before(from)
}

// TrackedType returns the single balance-tracked type selected on the
// application, if any. Applications are restricted to at most one tracked
// type so that approval deducts an unambiguous amount.
func (a *LeaveApplication) TrackedType() (LeaveType, bool) {
	for _, t := range a.LeaveTypes {
		if t.Tracked() {
			return t, true
		}
	}
	return "", false
}
