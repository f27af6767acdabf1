package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/catalog", handler.Catalog)
	api.Get("/articles", handler.Articles)

	api.Get("/dashboard", handler.Dashboard)
	api.Get("/insights", handler.Insights)
	api.Get("/calendar", handler.CalendarMonth)

	periods := api.Group("/periods")
	periods.Get("", handler.ListPeriods)
	periods.Post("", handler.CreatePeriod)
	periods.Post("/day", handler.AddPeriodDay)

	days := api.Group("/days")
	days.Get("/:date", handler.GetDay)
	days.Get("/:date/classification", handler.ClassifyDay)
	days.Put("/:date/symptoms", handler.UpdateSymptoms)
	days.Put("/:date/mood", handler.UpdateMood)

	api.Get("/settings", handler.GetSettings)
	api.Put("/settings", handler.UpdateSettings)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)

	api.Delete("/data", handler.ClearData)
}
