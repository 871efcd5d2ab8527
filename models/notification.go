package models

import (
	"time"
)

// Toasts and the persistent history deliberately use different
// three-valued vocabularies: a toast is success|error|info, a stored
// notification is success|info|alert. An "error" toast lands in the
// history as "alert".
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"

	NotificationSuccess = "success"
	NotificationInfo    = "info"
	NotificationAlert   = "alert"
)

// Notification is a durable per-user history entry. It is only ever
// mutated by a bulk mark-as-read, never deleted.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Msg       string    `json:"msg"`
	Time      string    `json:"time"`
	Read      bool      `json:"read"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Toast is an ephemeral popup. It self-destructs shortly after being
// published and is never persisted.
type Toast struct {
	ID   string `json:"id"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}
