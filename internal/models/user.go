package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for the users table.
type User struct {
	UserID           string         `db:"user_id"`
	Email            string         `db:"email"`
	PasswordHash     string         `db:"password_hash"`
	Name             string         `db:"name"`
	Department       string         `db:"department"`
	Designation      string         `db:"designation"`
	Contacts         string         `db:"contacts"`
	EmergencyContact string         `db:"emergency_contact"`
	EmergencyPhone   string         `db:"emergency_phone"`
	Role             string         `db:"role"`
	Status           string         `db:"status"`
	ManagerID        sql.NullString `db:"manager_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
