package models

import (
	"time"
)

const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

type LeaveRequest struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeaveRequestCreatePayload struct {
	Type      string `json:"type" validate:"required,oneof='Sick Leave' 'Paid Leave' 'Unpaid Leave'"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

type LeaveRequestUpdatePayload struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}
