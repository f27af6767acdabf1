package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	summary, err := handler.exportService.Summary()
	if err != nil {
		return serviceError(c, err, "failed to load export summary")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	snapshot, err := handler.exportService.Snapshot()
	if err != nil {
		return serviceError(c, err, "failed to fetch data")
	}

	serialized, err := json.MarshalIndent(fiber.Map{
		"exported_at": handler.now().In(handler.location).Format(time.RFC3339),
		"periods":     snapshot.Periods,
		"symptoms":    snapshot.Symptoms,
		"moods":       snapshot.Moods,
		"settings":    snapshot.Settings,
	}, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, services.ExportFileBaseName+".json")
	return c.Send(serialized)
}

// ExportCSV writes the per-day table by default; ?kind=periods writes one
// row per logged period instead.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	kind := strings.ToLower(strings.TrimSpace(c.Query("kind", "days")))

	var output bytes.Buffer
	var err error
	switch kind {
	case "days":
		err = handler.exportService.WriteDaysCSV(&output)
	case "periods":
		err = handler.exportService.WritePeriodsCSV(&output)
	default:
		return apiError(c, fiber.StatusBadRequest, "invalid export kind")
	}
	if err != nil {
		return serviceError(c, err, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", fmt.Sprintf("%s-%s.csv", services.ExportFileBaseName, kind))
	return c.Send(output.Bytes())
}
