package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ClearData(c *fiber.Ctx) error {
	if err := handler.dataService.ClearAll(); err != nil {
		return serviceError(c, err, "failed to clear data")
	}
	return c.JSON(fiber.Map{"ok": true})
}
