package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/models"
	"github.com/terraincognita07/luna/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Catalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"symptoms": models.DefaultSymptoms(),
		"moods":    models.DefaultMoods(),
		"flows":    models.Flows(),
	})
}

func (handler *Handler) Articles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"articles": services.SearchArticles(services.DefaultArticles(), c.Query("q")),
	})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "not found")
}
