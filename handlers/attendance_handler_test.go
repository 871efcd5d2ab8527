package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sujal2120/DailyFlow/models"
	"github.com/Sujal2120/DailyFlow/pkg/paseto"
	"github.com/Sujal2120/DailyFlow/repository"
)

// newScanApp wires the scan endpoint with a fixed session so the kiosk
// flow can be driven without the auth middleware.
func newScanApp(userID string) (*fiber.App, *repository.AttendanceRepository) {
	attendanceRepo := repository.NewAttendanceRepository()
	userRepo := repository.NewUserRepository()
	notifRepo := repository.NewNotificationRepository(repository.DefaultToastTTL)
	handler := NewAttendanceHandler(attendanceRepo, userRepo, notifRepo)

	app := fiber.New()
	app.Post("/scan", func(c *fiber.Ctx) error {
		c.Locals("user", &paseto.Claims{UserID: userID, Role: models.RoleEmployee})
		return handler.ScanQRCode(c)
	})
	return app, attendanceRepo
}

func freshQRCode(repo *repository.AttendanceRepository, code string) {
	now := time.Now()
	repo.CreateQRCode(&models.QRCode{
		ID:        ulid.Make().String(),
		Code:      code,
		Date:      now.Format(repository.DateLayout),
		ExpiresAt: now.Add(time.Hour),
		UsedBy:    []string{},
		CreatedAt: now,
	})
}

func scan(t *testing.T, app *fiber.App, code string) *http.Response {
	t.Helper()

	body, err := json.Marshal(models.QRCodeScanPayload{QRCodeValue: code})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestScanQRCode_OnePerDayLifecycle(t *testing.T) {
	app, repo := newScanApp("user-2")

	freshQRCode(repo, "code-morning")
	freshQRCode(repo, "code-evening")
	freshQRCode(repo, "code-extra")

	// First scan checks the user in.
	resp := scan(t, app, "code-morning")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	today := time.Now().Format(repository.DateLayout)
	record := repo.FindByUserAndDate("user-2", today)
	require.NotNil(t, record)
	assert.Equal(t, models.CheckOutPending, record.CheckOut)

	// The same code cannot be replayed by the same user.
	resp = scan(t, app, "code-morning")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// A fresh code checks the user out of the existing record.
	resp = scan(t, app, "code-evening")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	record = repo.FindByUserAndDate("user-2", today)
	require.NotNil(t, record)
	assert.NotEqual(t, models.CheckOutPending, record.CheckOut)

	// Any further scan that day is rejected: the ledger still holds a
	// single record for the user.
	resp = scan(t, app, "code-extra")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Len(t, repo.RecordsFor("user-2"), 1)
}

func TestScanQRCode_RejectsExpiredAndUnknown(t *testing.T) {
	app, repo := newScanApp("user-3")

	now := time.Now()
	repo.CreateQRCode(&models.QRCode{
		ID:        ulid.Make().String(),
		Code:      "code-stale",
		Date:      now.Format(repository.DateLayout),
		ExpiresAt: now.Add(-time.Minute),
		UsedBy:    []string{},
		CreatedAt: now.Add(-2 * time.Hour),
	})

	resp := scan(t, app, "code-stale")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = scan(t, app, "code-never-issued")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Empty(t, repo.RecordsFor("user-3"))
}
