package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sujal2120/DailyFlow/pkg/paseto"
	"github.com/Sujal2120/DailyFlow/repository"
)

type NotificationHandler struct {
	repo *repository.NotificationRepository
}

func NewNotificationHandler(repo *repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

// GetMyNotifications returns the session user's notification history,
// newest first.
func (h *NotificationHandler) GetMyNotifications(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	return c.Status(fiber.StatusOK).JSON(h.repo.HistoryFor(claims.UserID))
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"unread_count": h.repo.UnreadCount(claims.UserID)})
}

// MarkAllRead flips every unread notification for the session user.
// Calling it with nothing unread is fine.
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	h.repo.MarkAllRead(claims.UserID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) GetActiveToasts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.repo.ActiveToasts())
}

// DismissToast removes a toast before its timer expires it.
func (h *NotificationHandler) DismissToast(c *fiber.Ctx) error {
	toastID := c.Params("id")
	if toastID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "toast id is required"})
	}

	h.repo.Dismiss(toastID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Toast dismissed"})
}
