package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	today, err := handler.referenceDay(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dashboard, err := handler.statsService.Dashboard(today)
	if err != nil {
		return serviceError(c, err, "failed to load dashboard")
	}
	return c.JSON(dashboard)
}

func (handler *Handler) Insights(c *fiber.Ctx) error {
	today, err := handler.referenceDay(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	insights, err := handler.statsService.Insights()
	if err != nil {
		return serviceError(c, err, "failed to load insights")
	}
	cycle, err := handler.statsService.CycleStats(today)
	if err != nil {
		return serviceError(c, err, "failed to load insights")
	}
	return c.JSON(fiber.Map{
		"insights": insights,
		"cycle":    cycle,
	})
}

func (handler *Handler) CalendarMonth(c *fiber.Ctx) error {
	today, err := handler.referenceDay(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	year, month := today.Year, today.Month
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid month")
		}
		year, month = parsed.Year(), parsed.Month()
	}

	grid, err := handler.statsService.CalendarMonth(year, month, today)
	if err != nil {
		return serviceError(c, err, "failed to load calendar")
	}
	return c.JSON(grid)
}

func (handler *Handler) ClassifyDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	classification, err := handler.statsService.ClassifyDay(day)
	if err != nil {
		return serviceError(c, err, "failed to classify day")
	}
	return c.JSON(classification)
}
