package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	periods, err := handler.periodService.ListPeriods()
	if err != nil {
		return serviceError(c, err, "failed to load periods")
	}
	return c.JSON(fiber.Map{"periods": periods})
}

func (handler *Handler) CreatePeriod(c *fiber.Ctx) error {
	payload := periodPayload{}
	if message, ok := handler.bindPayload(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	startDate, message, ok := parsePayloadDate("start_date", payload.StartDate)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	input := services.PeriodInput{
		StartDate: startDate,
		Flow:      payload.Flow,
	}
	if payload.EndDate != "" {
		endDate, message, ok := parsePayloadDate("end_date", payload.EndDate)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		input.EndDate = &endDate
	}

	period, err := handler.periodService.LogPeriod(input)
	if err != nil {
		return serviceError(c, err, "failed to log period")
	}
	return c.Status(fiber.StatusCreated).JSON(period)
}

// AddPeriodDay marks a single day as a period day. It answers 200 with the
// covering period when the day was already inside one.
func (handler *Handler) AddPeriodDay(c *fiber.Ctx) error {
	payload := periodDayPayload{}
	if message, ok := handler.bindPayload(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	day, message, ok := parsePayloadDate("date", payload.Date)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	period, created, err := handler.periodService.AddPeriodDay(day, payload.Flow)
	if err != nil {
		return serviceError(c, err, "failed to log period day")
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"period": period, "created": created})
}
