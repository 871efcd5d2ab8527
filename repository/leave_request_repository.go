package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Sujal2120/DailyFlow/models"
)

var ErrLeaveRequestNotFound = errors.New("leave request not found")

// LeaveRequestRepository is the in-memory store of leave requests.
type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests []models.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{}
}

// Seed inserts requests as-is. Intended for startup data only.
func (r *LeaveRequestRepository) Seed(requests []models.LeaveRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, requests...)
}

func (r *LeaveRequestRepository) Create(userID string, payload *models.LeaveRequestCreatePayload) models.LeaveRequest {
	now := time.Now()
	request := models.LeaveRequest{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Type:      payload.Type,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Reason:    payload.Reason,
		Status:    models.LeavePending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, request)
	return request
}

func (r *LeaveRequestRepository) FindByID(id string) (*models.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, request := range r.requests {
		if request.ID == id {
			found := request
			return &found, nil
		}
	}
	return nil, ErrLeaveRequestNotFound
}

func (r *LeaveRequestRepository) FindByUser(userID string) []models.LeaveRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []models.LeaveRequest{}
	for _, request := range r.requests {
		if request.UserID == userID {
			results = append(results, request)
		}
	}
	return results
}

func (r *LeaveRequestRepository) All() []models.LeaveRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.LeaveRequest, len(r.requests))
	copy(results, r.requests)
	return results
}

func (r *LeaveRequestRepository) CountPending() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, request := range r.requests {
		if request.Status == models.LeavePending {
			count++
		}
	}
	return count
}

// UpdateStatus moves a request to Approved or Rejected.
func (r *LeaveRequestRepository) UpdateStatus(id, status string) (*models.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			r.requests[i].UpdatedAt = time.Now()
			updated := r.requests[i]
			return &updated, nil
		}
	}
	return nil, ErrLeaveRequestNotFound
}
