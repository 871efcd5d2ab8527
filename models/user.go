package models

import (
	"time"
)

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Avatar     string    `json:"avatar"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Salary     float64   `json:"salary"`
	Streak     int       `json:"streak"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserRegisterPayload struct {
	Name       string  `json:"name" validate:"required,min=3,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6,max=50,hasuppercase"`
	Role       string  `json:"role" validate:"required,oneof=Admin Employee"`
	Department string  `json:"department"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address" validate:"omitempty,min=5,max=255"`
	Salary     float64 `json:"salary" validate:"min=0"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdatePayload is the profile edit surface. Employees may only change
// their contact fields; the handler enforces that, not the payload.
type UserUpdatePayload struct {
	Name       string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Department string `json:"department,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty" validate:"omitempty,min=5,max=255"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=50,hasuppercase"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type DashboardStats struct {
	TotalEmployees         int               `json:"total_employees"`
	PresentToday           int               `json:"present_today"`
	PendingLeaveRequests   int               `json:"pending_leave_requests"`
	DepartmentDistribution []DepartmentCount `json:"department_distribution"`
}
