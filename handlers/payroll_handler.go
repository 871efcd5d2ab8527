package handlers

import (
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/Sujal2120/DailyFlow/models"
	"github.com/Sujal2120/DailyFlow/pkg/paseto"
	util "github.com/Sujal2120/DailyFlow/pkg/utils"
	"github.com/Sujal2120/DailyFlow/repository"
)

type PayrollHandler struct {
	userRepo  *repository.UserRepository
	notifRepo *repository.NotificationRepository
}

func NewPayrollHandler(userRepo *repository.UserRepository, notifRepo *repository.NotificationRepository) *PayrollHandler {
	return &PayrollHandler{userRepo: userRepo, notifRepo: notifRepo}
}

// buildSalarySlip derives the monthly breakdown from the annual figure:
// basic pay 60%, house rent allowance 20%, special allowance 20%, with a
// flat 10% tax deduction.
func buildSalarySlip(user *models.User) models.SalarySlip {
	monthly := user.Salary / 12

	return models.SalarySlip{
		UserID:           user.ID,
		UserName:         user.Name,
		AnnualSalary:     user.Salary,
		MonthlyGross:     round2(monthly),
		BasicPay:         round2(monthly * 0.60),
		HouseRentAllow:   round2(monthly * 0.20),
		SpecialAllowance: round2(monthly * 0.20),
		TaxDeduction:     round2(monthly * 0.10),
		NetPayable:       round2(monthly * 0.90),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// GetMySalarySlip returns the session user's slip.
func (h *PayrollHandler) GetMySalarySlip(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	user, err := h.userRepo.FindByID(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.Status(fiber.StatusOK).JSON(buildSalarySlip(user))
}

// GetAllSalarySlips returns slips for the whole roster, for the admin
// payroll table.
func (h *PayrollHandler) GetAllSalarySlips(c *fiber.Ctx) error {
	users := h.userRepo.All()

	slips := make([]models.SalarySlip, 0, len(users))
	for i := range users {
		slips = append(slips, buildSalarySlip(&users[i]))
	}

	return c.Status(fiber.StatusOK).JSON(slips)
}

// UpdateSalary sets an employee's annual salary.
func (h *PayrollHandler) UpdateSalary(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or invalid token claims"})
	}

	var payload models.SalaryUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
	}

	if validationErrors := util.ValidateStruct(payload); validationErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors})
	}

	user, err := h.userRepo.UpdateSalary(c.Params("id"), payload.Salary)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update salary"})
	}

	h.notifRepo.Publish(claims.UserID, "Salary structure updated!", models.ToastSuccess)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Salary structure updated!",
		"slip":    buildSalarySlip(user),
	})
}
