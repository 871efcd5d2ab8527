package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sujal2120/DailyFlow/models"
	"github.com/Sujal2120/DailyFlow/pkg/paseto"
	util "github.com/Sujal2120/DailyFlow/pkg/utils"
	"github.com/Sujal2120/DailyFlow/repository"
)

type UserHandler struct {
	userRepo       *repository.UserRepository
	attendanceRepo *repository.AttendanceRepository
	leaveRepo      *repository.LeaveRequestRepository
	notifRepo      *repository.NotificationRepository
}

func NewUserHandler(userRepo *repository.UserRepository, attendanceRepo *repository.AttendanceRepository, leaveRepo *repository.LeaveRequestRepository, notifRepo *repository.NotificationRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, attendanceRepo: attendanceRepo, leaveRepo: leaveRepo, notifRepo: notifRepo}
}

// GetUserByID returns one user. Employees can only fetch their own
// profile; admins can fetch anyone's.
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	targetID := c.Params("id")
	if claims.Role != models.RoleAdmin && claims.UserID != targetID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only view your own profile"})
	}

	user, err := h.userRepo.FindByID(targetID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// GetAllUsers lists the roster, optionally filtered by ?search= (name or
// email substring) and ?role=.
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	search := strings.ToLower(c.Query("search"))
	role := c.Query("role")

	users := h.userRepo.All()
	results := make([]models.User, 0, len(users))
	for _, user := range users {
		if role != "" && user.Role != role {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(user.Name), search) &&
			!strings.Contains(strings.ToLower(user.Email), search) {
			continue
		}
		results = append(results, user)
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

// UpdateUser edits a profile. Admins may edit any field of any user;
// employees may only change their own contact fields (phone, address).
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	targetID := c.Params("id")
	if claims.Role != models.RoleAdmin && claims.UserID != targetID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only update your own profile"})
	}

	var payload models.UserUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
	}

	if validationErrors := util.ValidateStruct(payload); validationErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors})
	}

	if claims.Role != models.RoleAdmin {
		if payload.Name != "" || payload.Email != "" || payload.Department != "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Employees may only update phone and address"})
		}
	}

	user, err := h.userRepo.UpdateProfile(targetID, &payload)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update user"})
	}

	h.notifRepo.Publish(claims.UserID, "Profile updated successfully", models.ToastSuccess)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	targetID := c.Params("id")

	if err := h.userRepo.Delete(targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete user"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted successfully"})
}

// GetDashboardStats aggregates the numbers for the admin dashboard
// cards: headcount, today's check-ins, pending leave requests, and the
// department breakdown.
func (h *UserHandler) GetDashboardStats(c *fiber.Ctx) error {
	users := h.userRepo.All()

	distribution := map[string]int{}
	for _, user := range users {
		if user.Department != "" {
			distribution[user.Department]++
		}
	}

	departments := make([]models.DepartmentCount, 0, len(distribution))
	for _, user := range users {
		if count, found := distribution[user.Department]; found {
			departments = append(departments, models.DepartmentCount{Department: user.Department, Count: count})
			delete(distribution, user.Department)
		}
	}

	stats := models.DashboardStats{
		TotalEmployees:         len(users),
		PresentToday:           h.attendanceRepo.CountByDate(time.Now().Format(repository.DateLayout)),
		PendingLeaveRequests:   h.leaveRepo.CountPending(),
		DepartmentDistribution: departments,
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
