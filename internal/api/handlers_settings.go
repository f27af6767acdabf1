package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.settingsService.Load()
	if err != nil {
		return serviceError(c, err, "failed to load settings")
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	payload := settingsPayload{}
	if message, ok := handler.bindPayload(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	if payload.ClearAge && payload.Age != nil {
		return apiError(c, fiber.StatusBadRequest, "age and clear_age cannot be combined")
	}

	current, err := handler.settingsService.Load()
	if err != nil {
		return serviceError(c, err, "failed to load settings")
	}

	input := services.SettingsInput{
		Age:             current.Age,
		CycleLength:     current.CycleLength,
		PeriodReminders: current.PeriodReminders,
		OvulationAlerts: current.OvulationAlerts,
		SymptomPrompts:  current.SymptomPrompts,
	}
	if payload.Age != nil {
		input.Age = payload.Age
	}
	if payload.ClearAge {
		input.Age = nil
	}
	if payload.CycleLength != nil {
		input.CycleLength = *payload.CycleLength
	}
	if payload.PeriodReminders != nil {
		input.PeriodReminders = *payload.PeriodReminders
	}
	if payload.OvulationAlerts != nil {
		input.OvulationAlerts = *payload.OvulationAlerts
	}
	if payload.SymptomPrompts != nil {
		input.SymptomPrompts = *payload.SymptomPrompts
	}

	settings, err := handler.settingsService.Update(input)
	if err != nil {
		return serviceError(c, err, "failed to update settings")
	}
	return c.JSON(settings)
}
