package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Sujal2120/DailyFlow/models"
)

const (
	// DateLayout is the calendar-date format used across the ledger.
	DateLayout = "2006-01-02"
	// ClockLayout renders a wall-clock time like "09:15 AM".
	ClockLayout = "03:04 PM"
)

// Lateness cutoff: a check-in strictly after 09:30 local time is Late.
const (
	lateCutoffHour   = 9
	lateCutoffMinute = 30
)

var (
	ErrDuplicateCheckIn  = errors.New("already checked in today")
	ErrNoActiveCheckIn   = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	ErrQRCodeNotFound = errors.New("qr code not found")
)

// CheckInResult carries the new record together with the user-facing
// confirmation message and the toast kind the caller should publish.
type CheckInResult struct {
	Record  models.Attendance
	Message string
	Kind    string
}

// AttendanceRepository is the in-memory attendance ledger. It owns every
// attendance record in the process and enforces the one-record-per-user-
// per-day rule. Records are kept newest-first; the ledger also stores the
// kiosk QR codes that feed into the same check-in path.
type AttendanceRepository struct {
	mu      sync.RWMutex
	records []models.Attendance
	qrCodes map[string]*models.QRCode // keyed by code value
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		qrCodes: make(map[string]*models.QRCode),
	}
}

// Seed inserts records as-is, newest first. Intended for startup data only.
func (r *AttendanceRepository) Seed(records []models.Attendance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range records {
		r.records = append([]models.Attendance{rec}, r.records...)
	}
}

// CheckIn creates today's record for userID. It fails with
// ErrDuplicateCheckIn when a record for (userID, today) already exists.
// The lock spans the lookup and the insert so concurrent requests cannot
// produce duplicate records.
func (r *AttendanceRepository) CheckIn(userID string, now time.Time) (*CheckInResult, error) {
	date := now.Format(DateLayout)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findLocked(userID, date) != nil {
		return nil, ErrDuplicateCheckIn
	}

	late := now.Hour() > lateCutoffHour ||
		(now.Hour() == lateCutoffHour && now.Minute() > lateCutoffMinute)

	status := models.StatusPresent
	message := "Checked in successfully!"
	kind := models.ToastSuccess
	if late {
		status = models.StatusLate
		message = "Checked in successfully! (Late Arrival)"
		kind = models.ToastInfo
	}

	record := models.Attendance{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Date:      date,
		Status:    status,
		CheckIn:   now.Format(ClockLayout),
		CheckOut:  models.CheckOutPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.records = append([]models.Attendance{record}, r.records...)

	return &CheckInResult{Record: record, Message: message, Kind: kind}, nil
}

// CheckOut stamps the check-out time on today's record. The status set at
// check-in time is never touched.
func (r *AttendanceRepository) CheckOut(userID string, now time.Time) (*models.Attendance, error) {
	date := now.Format(DateLayout)

	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.findLocked(userID, date)
	if record == nil {
		return nil, ErrNoActiveCheckIn
	}
	if record.CheckOut != models.CheckOutPending {
		return nil, ErrAlreadyCheckedOut
	}

	record.CheckOut = now.Format(ClockLayout)
	record.UpdatedAt = now

	updated := *record
	return &updated, nil
}

// FindByUserAndDate returns a copy of the record for (userID, date), or
// nil when none exists.
func (r *AttendanceRepository) FindByUserAndDate(userID, date string) *models.Attendance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if record := r.findLocked(userID, date); record != nil {
		found := *record
		return &found
	}
	return nil
}

// RecordsFor returns the user's records, newest first.
func (r *AttendanceRepository) RecordsFor(userID string) []models.Attendance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []models.Attendance{}
	for _, record := range r.records {
		if record.UserID == userID {
			results = append(results, record)
		}
	}
	return results
}

// AllRecords returns a snapshot of the whole ledger, newest first.
func (r *AttendanceRepository) AllRecords() []models.Attendance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.Attendance, len(r.records))
	copy(results, r.records)
	return results
}

// CountByDate counts records on a calendar date, for dashboard stats.
func (r *AttendanceRepository) CountByDate(date string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, record := range r.records {
		if record.Date == date {
			count++
		}
	}
	return count
}

func (r *AttendanceRepository) findLocked(userID, date string) *models.Attendance {
	for i := range r.records {
		if r.records[i].UserID == userID && r.records[i].Date == date {
			return &r.records[i]
		}
	}
	return nil
}

// --- Kiosk QR codes ---

func (r *AttendanceRepository) CreateQRCode(qrCode *models.QRCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.qrCodes[qrCode.Code] = qrCode
}

func (r *AttendanceRepository) FindQRCodeByValue(value string) (*models.QRCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	qrCode, ok := r.qrCodes[value]
	if !ok {
		return nil, ErrQRCodeNotFound
	}
	found := *qrCode
	found.UsedBy = append([]string(nil), qrCode.UsedBy...)
	return &found, nil
}

func (r *AttendanceRepository) MarkQRCodeAsUsed(code, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	qrCode, ok := r.qrCodes[code]
	if !ok {
		return ErrQRCodeNotFound
	}
	for _, usedID := range qrCode.UsedBy {
		if usedID == userID {
			return nil
		}
	}
	qrCode.UsedBy = append(qrCode.UsedBy, userID)
	qrCode.UpdatedAt = time.Now()
	return nil
}
