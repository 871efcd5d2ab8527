package models

import (
	"time"
)

const (
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusHalfDay = "Half-day"
	StatusAbsent  = "Absent"
)

// CheckOutPending marks a record whose owner has checked in but not yet
// checked out.
const CheckOutPending = "-"

type Attendance struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AttendanceWithUser struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	Date           string `json:"date"`
	Status         string `json:"status"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	UserName       string `json:"user_name"`
	UserEmail      string `json:"user_email"`
	UserDepartment string `json:"user_department,omitempty"`
}
