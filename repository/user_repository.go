package repository

import (
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/Sujal2120/DailyFlow/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// UserRepository is the in-memory employee roster.
type UserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create assigns an id and timestamps and stores the user. The email must
// not already be registered.
func (r *UserRepository) Create(user *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return "", ErrEmailTaken
		}
	}

	user.ID = ulid.Make().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Avatar == "" {
		user.Avatar = avatarInitials(user.Name)
	}

	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			found := user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// All returns a snapshot of the roster in insertion order.
func (r *UserRepository) All() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.users))
	copy(users, r.users)
	return users
}

func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// UpdateProfile applies the non-empty fields of payload to the user.
func (r *UserRepository) UpdateProfile(id string, payload *models.UserUpdatePayload) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findLocked(id)
	if user == nil {
		return nil, ErrUserNotFound
	}

	if payload.Name != "" {
		user.Name = payload.Name
		user.Avatar = avatarInitials(payload.Name)
	}
	if payload.Email != "" {
		user.Email = payload.Email
	}
	if payload.Department != "" {
		user.Department = payload.Department
	}
	if payload.Phone != "" {
		user.Phone = payload.Phone
	}
	if payload.Address != "" {
		user.Address = payload.Address
	}
	user.UpdatedAt = time.Now()

	updated := *user
	return &updated, nil
}

func (r *UserRepository) UpdateSalary(id string, salary float64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findLocked(id)
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Salary = salary
	user.UpdatedAt = time.Now()

	updated := *user
	return &updated, nil
}

func (r *UserRepository) UpdatePassword(id, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findLocked(id)
	if user == nil {
		return ErrUserNotFound
	}

	user.Password = hashedPassword
	user.UpdatedAt = time.Now()
	return nil
}

func (r *UserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *UserRepository) findLocked(id string) *models.User {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i]
		}
	}
	return nil
}

// avatarInitials builds the avatar text from up to two name initials,
// e.g. "Emily Blunt" -> "EB".
func avatarInitials(name string) string {
	parts := strings.Fields(name)
	initials := ""
	for i, part := range parts {
		if i == 2 {
			break
		}
		first, _ := utf8.DecodeRuneInString(part)
		initials += strings.ToUpper(string(first))
	}
	return initials
}
