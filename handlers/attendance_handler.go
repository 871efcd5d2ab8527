package handlers

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Sujal2120/DailyFlow/models"
	"github.com/Sujal2120/DailyFlow/pkg/paseto"
	"github.com/Sujal2120/DailyFlow/repository"
)

type AttendanceHandler struct {
	repo      *repository.AttendanceRepository
	userRepo  *repository.UserRepository
	notifRepo *repository.NotificationRepository
}

func NewAttendanceHandler(repo *repository.AttendanceRepository, userRepo *repository.UserRepository, notifRepo *repository.NotificationRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, userRepo: userRepo, notifRepo: notifRepo}
}

// CheckIn creates today's attendance record for the session user. A
// second attempt on the same day is rejected and reported back through
// the notification pipeline instead of failing silently.
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	result, err := h.repo.CheckIn(claims.UserID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCheckIn) {
			h.notifRepo.Publish(claims.UserID, "You have already checked in today.", models.ToastError)
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already checked in today."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check in"})
	}

	h.notifRepo.Publish(claims.UserID, result.Message, result.Kind)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": result.Message,
		"record":  result.Record,
	})
}

// CheckOut stamps the check-out time on today's record.
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	record, err := h.repo.CheckOut(claims.UserID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoActiveCheckIn):
			h.notifRepo.Publish(claims.UserID, "You have not checked in today yet.", models.ToastError)
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have not checked in today yet."})
		case errors.Is(err, repository.ErrAlreadyCheckedOut):
			h.notifRepo.Publish(claims.UserID, "You have already checked out today.", models.ToastError)
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already checked out today."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check out"})
	}

	h.notifRepo.Publish(claims.UserID, "Checked out successfully!", models.ToastSuccess)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Checked out successfully!",
		"record":  record,
	})
}

func (h *AttendanceHandler) GetMyAttendanceHistory(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	return c.Status(fiber.StatusOK).JSON(h.repo.RecordsFor(claims.UserID))
}

// GetAllAttendance returns the full ledger with user details joined in,
// for the admin logs table.
func (h *AttendanceHandler) GetAllAttendance(c *fiber.Ctx) error {
	records := h.repo.AllRecords()

	results := make([]models.AttendanceWithUser, 0, len(records))
	for _, record := range records {
		row := models.AttendanceWithUser{
			ID:       record.ID,
			UserID:   record.UserID,
			Date:     record.Date,
			Status:   record.Status,
			CheckIn:  record.CheckIn,
			CheckOut: record.CheckOut,
		}
		if user, err := h.userRepo.FindByID(record.UserID); err == nil {
			row.UserName = user.Name
			row.UserEmail = user.Email
			row.UserDepartment = user.Department
		}
		results = append(results, row)
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

// GenerateQRCode creates today's kiosk code and returns it as an inline
// PNG. The code expires at 23:00 local time.
func (h *AttendanceHandler) GenerateQRCode(c *fiber.Ctx) error {
	uniqueCode := uuid.New().String()
	today := time.Now()
	expiresAt := time.Date(today.Year(), today.Month(), today.Day(), 23, 0, 0, 0, today.Location())

	newQRCode := &models.QRCode{
		ID:        ulid.Make().String(),
		Code:      uniqueCode,
		Date:      today.Format(repository.DateLayout),
		ExpiresAt: expiresAt,
		UsedBy:    []string{},
		CreatedAt: today,
	}
	h.repo.CreateQRCode(newQRCode)

	png, err := qrcode.Encode(uniqueCode, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render QR code image"})
	}

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "QR code generated",
		"qr_code_image": "data:image/png;base64," + encodedString,
		"expires_at":    expiresAt,
	})
}

// ScanQRCode routes a kiosk scan into the regular check-in/check-out
// path: the first valid scan of the day checks the user in, the second
// checks them out.
func (h *AttendanceHandler) ScanQRCode(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	var payload models.QRCodeScanPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
	}

	qrCode, err := h.repo.FindQRCodeByValue(payload.QRCodeValue)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR code not found or invalid."})
	}

	now := time.Now()
	if now.After(qrCode.ExpiresAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR code has expired."})
	}

	today := now.Format(repository.DateLayout)
	if qrCode.Date != today {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR code is not valid for today."})
	}

	for _, usedID := range qrCode.UsedBy {
		if usedID == claims.UserID {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already used this QR code."})
		}
	}

	if existing := h.repo.FindByUserAndDate(claims.UserID, today); existing != nil {
		record, err := h.repo.CheckOut(claims.UserID, now)
		if err != nil {
			if errors.Is(err, repository.ErrAlreadyCheckedOut) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already checked in and out today."})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check out"})
		}
		if err := h.repo.MarkQRCodeAsUsed(qrCode.Code, claims.UserID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record QR code usage"})
		}
		h.notifRepo.Publish(claims.UserID, "Checked out successfully!", models.ToastSuccess)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Checked out at " + record.CheckOut})
	}

	result, err := h.repo.CheckIn(claims.UserID, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check in"})
	}

	if err := h.repo.MarkQRCodeAsUsed(qrCode.Code, claims.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record QR code usage"})
	}
	h.notifRepo.Publish(claims.UserID, result.Message, result.Kind)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Checked in at " + result.Record.CheckIn})
}
