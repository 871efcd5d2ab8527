package repository

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Sujal2120/DailyFlow/models"
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department already exists")
)

// DepartmentRepository is the in-memory list of departments.
type DepartmentRepository struct {
	mu          sync.RWMutex
	departments []models.Department
}

func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{}
}

func (r *DepartmentRepository) Create(name string) (models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, dept := range r.departments {
		if strings.EqualFold(dept.Name, name) {
			return models.Department{}, ErrDepartmentExists
		}
	}

	now := time.Now()
	department := models.Department{
		ID:        ulid.Make().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.departments = append(r.departments, department)
	return department, nil
}

func (r *DepartmentRepository) FindByID(id string) (*models.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, dept := range r.departments {
		if dept.ID == id {
			found := dept
			return &found, nil
		}
	}
	return nil, ErrDepartmentNotFound
}

func (r *DepartmentRepository) All() []models.Department {
	r.mu.RLock()
	defer r.mu.RUnlock()

	departments := make([]models.Department, len(r.departments))
	copy(departments, r.departments)
	return departments
}

func (r *DepartmentRepository) Update(id, name string) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.departments {
		if r.departments[i].ID == id {
			r.departments[i].Name = name
			r.departments[i].UpdatedAt = time.Now()
			updated := r.departments[i]
			return &updated, nil
		}
	}
	return nil, ErrDepartmentNotFound
}

func (r *DepartmentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.departments {
		if r.departments[i].ID == id {
			r.departments = append(r.departments[:i], r.departments[i+1:]...)
			return nil
		}
	}
	return ErrDepartmentNotFound
}
