package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sujal2120/DailyFlow/models"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04", value, time.Local)
	require.NoError(t, err)
	return parsed
}

func TestCheckIn_OnTime(t *testing.T) {
	repo := NewAttendanceRepository()

	res, err := repo.CheckIn("user-2", at(t, "2023-10-24T09:15"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPresent, res.Record.Status)
	assert.Equal(t, "09:15 AM", res.Record.CheckIn)
	assert.Equal(t, models.CheckOutPending, res.Record.CheckOut)
	assert.Equal(t, "2023-10-24", res.Record.Date)
	assert.Equal(t, "Checked in successfully!", res.Message)
	assert.Equal(t, models.ToastSuccess, res.Kind)
	assert.NotEmpty(t, res.Record.ID)
}

func TestCheckIn_Late(t *testing.T) {
	repo := NewAttendanceRepository()

	res, err := repo.CheckIn("user-3", at(t, "2023-10-25T09:45"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusLate, res.Record.Status)
	assert.Equal(t, "09:45 AM", res.Record.CheckIn)
	assert.Contains(t, res.Message, "(Late Arrival)")
	assert.Equal(t, models.ToastInfo, res.Kind)
}

func TestCheckIn_CutoffBoundary(t *testing.T) {
	// The cutoff is strictly after 09:30: 09:30 itself is still Present.
	cases := []struct {
		clock  string
		status string
	}{
		{"09:29", models.StatusPresent},
		{"09:30", models.StatusPresent},
		{"09:31", models.StatusLate},
		{"10:00", models.StatusLate},
		{"08:00", models.StatusPresent},
	}

	for _, tc := range cases {
		t.Run(tc.clock, func(t *testing.T) {
			repo := NewAttendanceRepository()
			res, err := repo.CheckIn("u", at(t, "2023-10-24T"+tc.clock))
			require.NoError(t, err)
			assert.Equal(t, tc.status, res.Record.Status)
		})
	}
}

func TestCheckIn_OncePerDay(t *testing.T) {
	repo := NewAttendanceRepository()

	_, err := repo.CheckIn("user-2", at(t, "2023-10-24T09:00"))
	require.NoError(t, err)

	_, err = repo.CheckIn("user-2", at(t, "2023-10-24T11:00"))
	require.ErrorIs(t, err, ErrDuplicateCheckIn)

	// Still only one record for the pair, no matter how often we retry.
	_, err = repo.CheckIn("user-2", at(t, "2023-10-24T15:00"))
	require.ErrorIs(t, err, ErrDuplicateCheckIn)
	assert.Len(t, repo.RecordsFor("user-2"), 1)

	// A different day or a different user is fine.
	_, err = repo.CheckIn("user-2", at(t, "2023-10-25T09:00"))
	require.NoError(t, err)
	_, err = repo.CheckIn("user-3", at(t, "2023-10-24T09:00"))
	require.NoError(t, err)
}

func TestCheckOut_HappyPath(t *testing.T) {
	repo := NewAttendanceRepository()

	res, err := repo.CheckIn("user-2", at(t, "2023-10-24T09:15"))
	require.NoError(t, err)

	updated, err := repo.CheckOut("user-2", at(t, "2023-10-24T17:00"))
	require.NoError(t, err)

	assert.Equal(t, res.Record.ID, updated.ID)
	assert.Equal(t, "05:00 PM", updated.CheckOut)
	assert.Equal(t, "09:15 AM", updated.CheckIn)
	// Check-out never rewrites the status assigned at check-in.
	assert.Equal(t, models.StatusPresent, updated.Status)

	stored := repo.FindByUserAndDate("user-2", "2023-10-24")
	require.NotNil(t, stored)
	assert.Equal(t, "05:00 PM", stored.CheckOut)
}

func TestCheckOut_StatusUntouchedWhenLate(t *testing.T) {
	repo := NewAttendanceRepository()

	_, err := repo.CheckIn("user-3", at(t, "2023-10-25T09:45"))
	require.NoError(t, err)

	updated, err := repo.CheckOut("user-3", at(t, "2023-10-25T18:05"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusLate, updated.Status)
	assert.Equal(t, "06:05 PM", updated.CheckOut)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	repo := NewAttendanceRepository()

	_, err := repo.CheckOut("user-2", at(t, "2023-10-24T17:00"))
	require.ErrorIs(t, err, ErrNoActiveCheckIn)
}

func TestCheckOut_Twice(t *testing.T) {
	repo := NewAttendanceRepository()

	_, err := repo.CheckIn("user-2", at(t, "2023-10-24T09:00"))
	require.NoError(t, err)
	_, err = repo.CheckOut("user-2", at(t, "2023-10-24T17:00"))
	require.NoError(t, err)

	_, err = repo.CheckOut("user-2", at(t, "2023-10-24T18:00"))
	require.ErrorIs(t, err, ErrAlreadyCheckedOut)

	// The second attempt must not have altered the stored time.
	stored := repo.FindByUserAndDate("user-2", "2023-10-24")
	require.NotNil(t, stored)
	assert.Equal(t, "05:00 PM", stored.CheckOut)
}

func TestRecordsFor_NewestFirstAndFiltered(t *testing.T) {
	repo := NewAttendanceRepository()

	_, err := repo.CheckIn("user-2", at(t, "2023-10-24T09:00"))
	require.NoError(t, err)
	_, err = repo.CheckIn("user-3", at(t, "2023-10-24T09:05"))
	require.NoError(t, err)
	_, err = repo.CheckIn("user-2", at(t, "2023-10-25T09:10"))
	require.NoError(t, err)

	mine := repo.RecordsFor("user-2")
	require.Len(t, mine, 2)
	assert.Equal(t, "2023-10-25", mine[0].Date)
	assert.Equal(t, "2023-10-24", mine[1].Date)

	all := repo.AllRecords()
	assert.Len(t, all, 3)
	assert.Equal(t, "user-2", all[0].UserID)

	assert.Empty(t, repo.RecordsFor("nobody"))
}

func TestSeedAndCountByDate(t *testing.T) {
	repo := NewAttendanceRepository()
	repo.Seed([]models.Attendance{
		{ID: "101", UserID: "user-2", Date: "2023-10-24", Status: models.StatusPresent, CheckIn: "09:00 AM", CheckOut: "05:00 PM"},
		{ID: "103", UserID: "user-3", Date: "2023-10-25", Status: models.StatusAbsent, CheckIn: "-", CheckOut: "-"},
	})

	assert.Equal(t, 1, repo.CountByDate("2023-10-24"))
	assert.Equal(t, 1, repo.CountByDate("2023-10-25"))
	assert.Equal(t, 0, repo.CountByDate("2023-10-26"))

	// A seeded record for today blocks check-in like any other.
	_, err := repo.CheckIn("user-2", at(t, "2023-10-24T10:00"))
	require.ErrorIs(t, err, ErrDuplicateCheckIn)
}

func TestQRCodeLifecycle(t *testing.T) {
	repo := NewAttendanceRepository()

	repo.CreateQRCode(&models.QRCode{
		ID:        "qr-1",
		Code:      "abc-123",
		Date:      "2023-10-24",
		ExpiresAt: at(t, "2023-10-24T23:00"),
	})

	qr, err := repo.FindQRCodeByValue("abc-123")
	require.NoError(t, err)
	assert.Empty(t, qr.UsedBy)

	require.NoError(t, repo.MarkQRCodeAsUsed("abc-123", "user-2"))
	require.NoError(t, repo.MarkQRCodeAsUsed("abc-123", "user-2"))

	qr, err = repo.FindQRCodeByValue("abc-123")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-2"}, qr.UsedBy)

	_, err = repo.FindQRCodeByValue("missing")
	require.ErrorIs(t, err, ErrQRCodeNotFound)
}
