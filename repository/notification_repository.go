package repository

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Sujal2120/DailyFlow/models"
)

// DefaultToastTTL is how long a toast stays visible before it removes
// itself.
const DefaultToastTTL = 3 * time.Second

// NotificationRepository fans every published message out to two places:
// an ephemeral toast queue, where each entry self-destructs after the TTL,
// and a durable per-user history that survives until the process exits.
// Toast removal is keyed by toast id, so expiry of one toast can never
// evict another, and an in-flight timer can be cancelled by Dismiss.
type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []models.Notification // newest-first
	toasts        []models.Toast
	timers        map[string]*time.Timer
	ttl           time.Duration

	// afterFunc is swapped out by tests to drive toast expiry manually.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewNotificationRepository(ttl time.Duration) *NotificationRepository {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &NotificationRepository{
		timers:    make(map[string]*time.Timer),
		ttl:       ttl,
		afterFunc: time.AfterFunc,
	}
}

// Seed prepends history entries as-is. Intended for startup data only.
func (r *NotificationRepository) Seed(notifications []models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range notifications {
		r.notifications = append([]models.Notification{n}, r.notifications...)
	}
}

// Publish enqueues a toast and schedules its expiry. When sessionUserID is
// non-empty the message is also prepended to that user's durable history,
// unread. An "error" toast is stored with type "alert"; the other kinds
// map through unchanged.
func (r *NotificationRepository) Publish(sessionUserID, msg, kind string) models.Toast {
	toast := models.Toast{
		ID:   ulid.Make().String(),
		Msg:  msg,
		Type: kind,
	}

	r.mu.Lock()
	r.toasts = append(r.toasts, toast)

	if sessionUserID != "" {
		historyType := kind
		if kind == models.ToastError {
			historyType = models.NotificationAlert
		}
		notification := models.Notification{
			ID:        ulid.Make().String(),
			UserID:    sessionUserID,
			Msg:       msg,
			Time:      "Just now",
			Read:      false,
			Type:      historyType,
			CreatedAt: time.Now(),
		}
		r.notifications = append([]models.Notification{notification}, r.notifications...)
	}

	r.timers[toast.ID] = r.afterFunc(r.ttl, func() {
		r.expire(toast.ID)
	})
	r.mu.Unlock()

	return toast
}

// Dismiss removes a toast before its timer fires. It is a no-op for
// unknown or already-expired ids.
func (r *NotificationRepository) Dismiss(toastID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if timer, ok := r.timers[toastID]; ok {
		timer.Stop()
	}
	r.removeToastLocked(toastID)
}

func (r *NotificationRepository) expire(toastID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeToastLocked(toastID)
}

func (r *NotificationRepository) removeToastLocked(toastID string) {
	delete(r.timers, toastID)
	for i, toast := range r.toasts {
		if toast.ID == toastID {
			r.toasts = append(r.toasts[:i], r.toasts[i+1:]...)
			return
		}
	}
}

// ActiveToasts returns the currently visible toasts, oldest first.
func (r *NotificationRepository) ActiveToasts() []models.Toast {
	r.mu.RLock()
	defer r.mu.RUnlock()

	toasts := make([]models.Toast, len(r.toasts))
	copy(toasts, r.toasts)
	return toasts
}

// HistoryFor returns the user's notifications, newest first.
func (r *NotificationRepository) HistoryFor(userID string) []models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []models.Notification{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			results = append(results, n)
		}
	}
	return results
}

// UnreadCount counts the user's unread notifications.
func (r *NotificationRepository) UnreadCount(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead flags every notification owned by userID as read. Calling it
// again is a no-op.
func (r *NotificationRepository) MarkAllRead(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			r.notifications[i].Read = true
		}
	}
}
