package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Sujal2120/DailyFlow/models"
)

var ErrScheduleNotFound = errors.New("work schedule not found")

// WorkScheduleRepository stores the schedule rules. Expansion of
// recurrence rules into concrete days happens in the handler.
type WorkScheduleRepository struct {
	mu        sync.RWMutex
	schedules []models.WorkSchedule
}

func NewWorkScheduleRepository() *WorkScheduleRepository {
	return &WorkScheduleRepository{}
}

func (r *WorkScheduleRepository) Create(schedule *models.WorkSchedule) models.WorkSchedule {
	schedule.ID = ulid.Make().String()
	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = append(r.schedules, *schedule)
	return *schedule
}

func (r *WorkScheduleRepository) FindByID(id string) (*models.WorkSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, schedule := range r.schedules {
		if schedule.ID == id {
			found := schedule
			return &found, nil
		}
	}
	return nil, ErrScheduleNotFound
}

func (r *WorkScheduleRepository) All() []models.WorkSchedule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schedules := make([]models.WorkSchedule, len(r.schedules))
	copy(schedules, r.schedules)
	return schedules
}

func (r *WorkScheduleRepository) UpdateByID(id string, payload *models.WorkScheduleUpdatePayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.schedules {
		if r.schedules[i].ID == id {
			r.schedules[i].StartTime = payload.StartTime
			r.schedules[i].EndTime = payload.EndTime
			r.schedules[i].Note = payload.Note
			if payload.RecurrenceRule != "" {
				r.schedules[i].RecurrenceRule = payload.RecurrenceRule
			}
			r.schedules[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrScheduleNotFound
}

func (r *WorkScheduleRepository) DeleteByID(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.schedules {
		if r.schedules[i].ID == id {
			r.schedules = append(r.schedules[:i], r.schedules[i+1:]...)
			return nil
		}
	}
	return ErrScheduleNotFound
}
