package models

import (
	"time"
)

type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DepartmentPayload struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
