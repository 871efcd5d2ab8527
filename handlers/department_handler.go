package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Sujal2120/DailyFlow/models"
	util "github.com/Sujal2120/DailyFlow/pkg/utils"
	"github.com/Sujal2120/DailyFlow/repository"
)

type DepartmentHandler struct {
	repo *repository.DepartmentRepository
}

func NewDepartmentHandler(repo *repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	var payload models.DepartmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
	}

	if validationErrors := util.ValidateStruct(payload); validationErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors})
	}

	department, err := h.repo.Create(payload.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Department already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create department"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Department created",
		"department": department,
	})
}

func (h *DepartmentHandler) GetAllDepartments(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.repo.All())
}

func (h *DepartmentHandler) GetDepartmentByID(c *fiber.Ctx) error {
	department, err := h.repo.FindByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	return c.Status(fiber.StatusOK).JSON(department)
}

func (h *DepartmentHandler) UpdateDepartment(c *fiber.Ctx) error {
	var payload models.DepartmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
	}

	if validationErrors := util.ValidateStruct(payload); validationErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors})
	}

	department, err := h.repo.Update(c.Params("id"), payload.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update department"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Department updated",
		"department": department,
	})
}

func (h *DepartmentHandler) DeleteDepartment(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete department"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Department deleted"})
}
