package models

import (
	"time"
)

// QRCode is a kiosk code valid for a single day. UsedBy tracks everyone
// who already scanned it so a code cannot be replayed by the same person.
type QRCode struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Date      string    `json:"date"`
	ExpiresAt time.Time `json:"expires_at"`
	UsedBy    []string  `json:"used_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QRCodeScanPayload struct {
	QRCodeValue string `json:"qr_code_value" validate:"required"`
}
