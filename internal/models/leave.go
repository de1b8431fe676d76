package models

import (
	"database/sql"
	"time"
)

// LeaveApplication is the database row shape for the leave_applications table.
// Leave types are stored as a text[] column, scanned directly by pgx.
type LeaveApplication struct {
	ApplicationID     string         `db:"application_id"`
	EmployeeID        string         `db:"employee_id"`
	EmployeeName      string         `db:"employee_name"`
	Department        string         `db:"department"`
	Designation       string         `db:"designation"`
	Contacts          string         `db:"contacts"`
	LeaveTypes        []string       `db:"leave_types"`
	FromDate          time.Time      `db:"from_date"`
	ToDate            time.Time      `db:"to_date"`
	Reason            string         `db:"reason"`
	EmployeeSignature string         `db:"employee_signature"`
	ImportantComments string         `db:"important_comments"`
	Status            string         `db:"status"`
	ApprovedBy        sql.NullString `db:"approved_by"`
	ApprovedAt        sql.NullTime   `db:"approved_at"`
	AdminComments     sql.NullString `db:"admin_comments"`
	CreatedAt         time.Time      `db:"created_at"`
}

// LeaveBalance is the database row shape for the leave_balances table.
type LeaveBalance struct {
	BalanceID        string    `db:"balance_id"`
	UserID           string    `db:"user_id"`
	Year             int       `db:"year"`
	SickTotal        int       `db:"sick_leave_total"`
	SickUsed         int       `db:"sick_leave_used"`
	PersonalTotal    int       `db:"personal_leave_total"`
	PersonalUsed     int       `db:"personal_leave_used"`
	MaternityTotal   int       `db:"maternity_leave_total"`
	MaternityUsed    int       `db:"maternity_leave_used"`
	StudyTotal       int       `db:"study_leave_total"`
	StudyUsed        int       `db:"study_leave_used"`
	BereavementTotal int       `db:"bereavement_leave_total"`
	BereavementUsed  int       `db:"bereavement_leave_used"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
