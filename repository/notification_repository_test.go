package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sujal2120/DailyFlow/models"
)

// manualScheduler replaces time.AfterFunc so tests can fire toast expiry
// deterministically instead of sleeping.
type manualScheduler struct {
	callbacks map[string]func()
	order     []string
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{callbacks: make(map[string]func())}
}

func (s *manualScheduler) afterFunc(_ time.Duration, f func()) *time.Timer {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	id := string(rune('a' + len(s.order)))
	s.callbacks[id] = f
	s.order = append(s.order, id)
	return timer
}

func (s *manualScheduler) fire(index int) {
	s.callbacks[s.order[index]]()
}

func newTestCenter() (*NotificationRepository, *manualScheduler) {
	repo := NewNotificationRepository(DefaultToastTTL)
	sched := newManualScheduler()
	repo.afterFunc = sched.afterFunc
	return repo, sched
}

func TestPublish_WithSession(t *testing.T) {
	repo, sched := newTestCenter()

	toast := repo.Publish("user-2", "Welcome", models.ToastSuccess)
	assert.NotEmpty(t, toast.ID)

	require.Len(t, repo.ActiveToasts(), 1)
	history := repo.HistoryFor("user-2")
	require.Len(t, history, 1)
	assert.Equal(t, "Welcome", history[0].Msg)
	assert.Equal(t, models.NotificationSuccess, history[0].Type)
	assert.Equal(t, "Just now", history[0].Time)
	assert.False(t, history[0].Read)

	// After expiry the toast is gone but the history entry remains.
	sched.fire(0)
	assert.Empty(t, repo.ActiveToasts())
	assert.Len(t, repo.HistoryFor("user-2"), 1)
}

func TestPublish_NoSession(t *testing.T) {
	repo, _ := newTestCenter()

	repo.Publish("", "Invalid credentials. Try sujal@dayflow.com", models.ToastError)

	assert.Len(t, repo.ActiveToasts(), 1)
	assert.Empty(t, repo.HistoryFor("user-2"))
	assert.Equal(t, 0, repo.UnreadCount("user-2"))
}

func TestPublish_ErrorMapsToAlert(t *testing.T) {
	repo, _ := newTestCenter()

	toast := repo.Publish("user-2", "Something failed", models.ToastError)

	// Toast keeps "error", history stores "alert".
	assert.Equal(t, models.ToastError, toast.Type)
	history := repo.HistoryFor("user-2")
	require.Len(t, history, 1)
	assert.Equal(t, models.NotificationAlert, history[0].Type)
}

func TestExpiry_RemovesByIdentity(t *testing.T) {
	repo, sched := newTestCenter()

	first := repo.Publish("user-2", "first", models.ToastInfo)
	second := repo.Publish("user-2", "second", models.ToastInfo)
	require.Len(t, repo.ActiveToasts(), 2)

	// Expiring the first toast must not touch the second.
	sched.fire(0)
	remaining := repo.ActiveToasts()
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)

	sched.fire(1)
	assert.Empty(t, repo.ActiveToasts())
	_ = first
}

func TestDismiss(t *testing.T) {
	repo, sched := newTestCenter()

	toast := repo.Publish("user-2", "dismiss me", models.ToastInfo)
	repo.Dismiss(toast.ID)
	assert.Empty(t, repo.ActiveToasts())

	// The stale timer callback firing later must be harmless.
	sched.fire(0)
	assert.Empty(t, repo.ActiveToasts())

	repo.Dismiss("unknown-id")
}

func TestHistory_NewestFirstPerUser(t *testing.T) {
	repo, _ := newTestCenter()

	repo.Publish("user-2", "one", models.ToastInfo)
	repo.Publish("user-3", "theirs", models.ToastInfo)
	repo.Publish("user-2", "two", models.ToastSuccess)

	history := repo.HistoryFor("user-2")
	require.Len(t, history, 2)
	assert.Equal(t, "two", history[0].Msg)
	assert.Equal(t, "one", history[1].Msg)
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	repo, _ := newTestCenter()

	repo.Publish("user-2", "one", models.ToastInfo)
	repo.Publish("user-2", "two", models.ToastInfo)
	repo.Publish("user-3", "other", models.ToastInfo)
	require.Equal(t, 2, repo.UnreadCount("user-2"))

	repo.MarkAllRead("user-2")
	assert.Equal(t, 0, repo.UnreadCount("user-2"))

	repo.MarkAllRead("user-2")
	assert.Equal(t, 0, repo.UnreadCount("user-2"))

	// Other users' unread state is untouched.
	assert.Equal(t, 1, repo.UnreadCount("user-3"))
}

func TestSeedHistory(t *testing.T) {
	repo, _ := newTestCenter()
	repo.Seed([]models.Notification{
		{ID: "1", UserID: "user-2", Msg: "Your leave for Oct 24 was approved.", Time: "2 hours ago", Read: false, Type: models.NotificationSuccess},
		{ID: "2", UserID: "user-2", Msg: "Welcome to Dayflow! Please complete your profile.", Time: "1 day ago", Read: true, Type: models.NotificationInfo},
	})

	assert.Equal(t, 1, repo.UnreadCount("user-2"))
	history := repo.HistoryFor("user-2")
	require.Len(t, history, 2)
	// Seed prepends, so the last seeded entry comes out first.
	assert.Equal(t, "2", history[0].ID)
}

func TestToastExpiresWithRealTimer(t *testing.T) {
	repo := NewNotificationRepository(20 * time.Millisecond)

	repo.Publish("user-2", "short lived", models.ToastSuccess)
	require.Len(t, repo.ActiveToasts(), 1)

	require.Eventually(t, func() bool {
		return len(repo.ActiveToasts()) == 0
	}, time.Second, 5*time.Millisecond)

	assert.Len(t, repo.HistoryFor("user-2"), 1)
}
