package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/services"
)

var errInvalidDate = errors.New("invalid date")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps domain validation failures to 400 and everything else
// to 500 with the given message.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	logger.Log.WithError(err).WithField("path", c.Path()).Error(fallback)
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

var validationErrors = []error{
	services.ErrPeriodStartRequired,
	services.ErrInvalidFlow,
	services.ErrPeriodEndBeforeStart,
	services.ErrPeriodTooLong,
	services.ErrDayRequired,
	services.ErrNoSymptomsSelected,
	services.ErrUnknownSymptom,
	services.ErrMoodRequired,
	services.ErrUnknownMood,
	services.ErrInvalidCycleLength,
	services.ErrInvalidAge,
}

func parseDayParam(raw string) (calendar.Date, error) {
	day, err := calendar.Parse(raw)
	if err != nil || day.IsZero() {
		return calendar.Date{}, errInvalidDate
	}
	return day, nil
}

// referenceDay reads the optional ?date= override, defaulting to today in
// the configured location.
func (handler *Handler) referenceDay(c *fiber.Ctx) (calendar.Date, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return handler.today(), nil
	}
	return parseDayParam(raw)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
