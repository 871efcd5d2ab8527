package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sujal2120/DailyFlow/models"
	"github.com/Sujal2120/DailyFlow/pkg/paseto"
	util "github.com/Sujal2120/DailyFlow/pkg/utils"
	"github.com/Sujal2120/DailyFlow/repository"
)

type LeaveRequestHandler struct {
	repo      *repository.LeaveRequestRepository
	notifRepo *repository.NotificationRepository
}

func NewLeaveRequestHandler(repo *repository.LeaveRequestRepository, notifRepo *repository.NotificationRepository) *LeaveRequestHandler {
	return &LeaveRequestHandler{repo: repo, notifRepo: notifRepo}
}

// CreateLeaveRequest files a new request for the session user. It
// always starts in Pending.
func (h *LeaveRequestHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	var payload models.LeaveRequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
	}

	if validationErrors := util.ValidateStruct(payload); validationErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors})
	}

	// The datetime tag only checks the format; date ordering is compared
	// here because validator's cross-field tags compare strings by length.
	startDate, err := time.Parse(repository.DateLayout, payload.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date"})
	}
	endDate, err := time.Parse(repository.DateLayout, payload.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date"})
	}
	if endDate.Before(startDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must not be earlier than start date"})
	}

	request := h.repo.Create(claims.UserID, &payload)

	h.notifRepo.Publish(claims.UserID, "Leave request submitted", models.ToastSuccess)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Leave request submitted",
		"request": request,
	})
}

// GetMyLeaveRequests lists the session user's own requests.
func (h *LeaveRequestHandler) GetMyLeaveRequests(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	return c.Status(fiber.StatusOK).JSON(h.repo.FindByUser(claims.UserID))
}

func (h *LeaveRequestHandler) GetAllLeaveRequests(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.repo.All())
}

// UpdateLeaveRequestStatus lets an admin approve or reject a request.
// The outcome is echoed back through the notification pipeline, with an
// approval shown as success and a rejection as plain info.
func (h *LeaveRequestHandler) UpdateLeaveRequestStatus(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	var payload models.LeaveRequestUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
	}

	if validationErrors := util.ValidateStruct(payload); validationErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors})
	}

	request, err := h.repo.UpdateStatus(c.Params("id"), payload.Status)
	if err != nil {
		if errors.Is(err, repository.ErrLeaveRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update leave request"})
	}

	message := fmt.Sprintf("Request marked as %s", request.Status)
	kind := models.ToastInfo
	if request.Status == models.LeaveApproved {
		kind = models.ToastSuccess
	}
	h.notifRepo.Publish(claims.UserID, message, kind)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
		"request": request,
	})
}
