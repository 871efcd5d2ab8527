package models

import (
	"time"
)

// WorkSchedule is a schedule rule. With a RecurrenceRule (RFC 5545 RRULE
// string) the rule expands to one instance per matching day; without one
// it applies to Date only.
type WorkSchedule struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Note           string    `json:"note,omitempty"`
	RecurrenceRule string    `json:"recurrence_rule,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type WorkScheduleCreatePayload struct {
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string `json:"end_time" validate:"required,datetime=15:04"`
	Note           string `json:"note"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}

type WorkScheduleUpdatePayload struct {
	StartTime      string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string `json:"end_time" validate:"required,datetime=15:04"`
	Note           string `json:"note,omitempty"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
