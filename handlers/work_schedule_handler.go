package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/teambition/rrule-go"

	"github.com/Sujal2120/DailyFlow/models"
	util "github.com/Sujal2120/DailyFlow/pkg/utils"
	"github.com/Sujal2120/DailyFlow/repository"
)

type WorkScheduleHandler struct {
	repo *repository.WorkScheduleRepository
}

func NewWorkScheduleHandler(repo *repository.WorkScheduleRepository) *WorkScheduleHandler {
	return &WorkScheduleHandler{repo: repo}
}

// CreateWorkSchedule stores a new schedule rule, optionally with an
// RFC 5545 recurrence rule to repeat it.
func (h *WorkScheduleHandler) CreateWorkSchedule(c *fiber.Ctx) error {
	var payload models.WorkScheduleCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
	}

	if validationErrors := util.ValidateStruct(payload); validationErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors})
	}

	if payload.RecurrenceRule != "" {
		if _, err := rrule.StrToROption(payload.RecurrenceRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid recurrence rule: " + err.Error()})
		}
	}

	schedule := h.repo.Create(&models.WorkSchedule{
		Date:           strings.TrimSpace(payload.Date),
		StartTime:      strings.TrimSpace(payload.StartTime),
		EndTime:        strings.TrimSpace(payload.EndTime),
		Note:           payload.Note,
		RecurrenceRule: payload.RecurrenceRule,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Work schedule created",
		"schedule": schedule,
	})
}

func (h *WorkScheduleHandler) GetWorkScheduleByID(c *fiber.Ctx) error {
	schedule, err := h.repo.FindByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work schedule not found"})
	}

	return c.Status(fiber.StatusOK).JSON(schedule)
}

// GetAllWorkSchedules expands the stored rules into concrete days
// between ?start_date= and ?end_date=, skipping national holidays.
func (h *WorkScheduleHandler) GetAllWorkSchedules(c *fiber.Ctx) error {
	startDate, err := time.Parse(repository.DateLayout, c.Query("start_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date format"})
	}
	endDate, err := time.Parse(repository.DateLayout, c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date format"})
	}

	holidayMap, err := util.GetHolidayMap(startDate.Format("2006"))
	if err != nil {
		holidayMap = map[string]bool{}
	}
	if startDate.Year() != endDate.Year() {
		if nextYearHolidays, err := util.GetHolidayMap(endDate.Format("2006")); err == nil {
			for date, isHoliday := range nextYearHolidays {
				holidayMap[date] = isHoliday
			}
		}
	}

	finalSchedules := []models.WorkSchedule{}

	for _, rule := range h.repo.All() {
		if rule.RecurrenceRule != "" {
			rOption, err := rrule.StrToROption(rule.RecurrenceRule)
			if err != nil {
				continue
			}

			ruleStartDate, err := time.Parse(repository.DateLayout, rule.Date)
			if err != nil {
				continue
			}
			rOption.Dtstart = ruleStartDate

			rr, err := rrule.NewRRule(*rOption)
			if err != nil {
				continue
			}

			ruleSet := rrule.Set{}
			ruleSet.RRule(rr)

			for _, instance := range ruleSet.Between(startDate, endDate, true) {
				instanceDate := instance.Format(repository.DateLayout)
				if holidayMap[instanceDate] {
					continue
				}
				finalSchedules = append(finalSchedules, models.WorkSchedule{
					ID:             rule.ID,
					Date:           instanceDate,
					StartTime:      rule.StartTime,
					EndTime:        rule.EndTime,
					Note:           rule.Note,
					RecurrenceRule: rule.RecurrenceRule,
				})
			}
			continue
		}

		ruleDate, err := time.Parse(repository.DateLayout, rule.Date)
		if err != nil {
			continue
		}
		if !ruleDate.Before(startDate) && !ruleDate.After(endDate) && !holidayMap[rule.Date] {
			finalSchedules = append(finalSchedules, rule)
		}
	}

	return c.Status(fiber.StatusOK).JSON(finalSchedules)
}

// GetHolidays serves the national holiday list for the calendar view.
func (h *WorkScheduleHandler) GetHolidays(c *fiber.Ctx) error {
	year := c.Query("year")
	if year == "" {
		year = time.Now().Format("2006")
	}

	holidays, err := util.GetHolidays(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch holidays"})
	}

	return c.Status(fiber.StatusOK).JSON(holidays)
}

func (h *WorkScheduleHandler) UpdateWorkSchedule(c *fiber.Ctx) error {
	var payload models.WorkScheduleUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload: " + err.Error()})
	}

	if validationErrors := util.ValidateStruct(payload); validationErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors})
	}

	if err := h.repo.UpdateByID(c.Params("id"), &payload); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work schedule not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update work schedule"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Work schedule updated"})
}

func (h *WorkScheduleHandler) DeleteWorkSchedule(c *fiber.Ctx) error {
	if err := h.repo.DeleteByID(c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work schedule not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete work schedule"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Work schedule deleted"})
}
