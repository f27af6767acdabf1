package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.dayLogService.Entry(day)
	if err != nil {
		return serviceError(c, err, "failed to load day")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpdateSymptoms(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	payload := symptomsPayload{}
	if message, ok := handler.bindPayload(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	entry, err := handler.dayLogService.LogSymptoms(day, payload.Symptoms)
	if err != nil {
		return serviceError(c, err, "failed to save symptoms")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpdateMood(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	payload := moodPayload{}
	if message, ok := handler.bindPayload(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	entry, err := handler.dayLogService.LogMood(day, payload.Mood)
	if err != nil {
		return serviceError(c, err, "failed to save mood")
	}
	return c.JSON(entry)
}
