package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/db"
	"github.com/terraincognita07/luna/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	location *time.Location
	now      func() time.Time
	validate *validator.Validate

	periodService   *services.PeriodService
	dayLogService   *services.DayLogService
	settingsService *services.SettingsService
	statsService    *services.StatsService
	exportService   *services.ExportService
	dataService     *services.DataService
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		location: location,
		now:      time.Now,
		validate: newValidator(),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	repos := db.NewRepositories(database)
	handler.periodService = services.NewPeriodService(repos.Periods)
	handler.dayLogService = services.NewDayLogService(repos.DayEntries)
	handler.settingsService = services.NewSettingsService(repos.Settings)
	handler.statsService = services.NewStatsService(repos.Periods, handler.dayLogService, handler.settingsService)
	handler.exportService = services.NewExportService(repos.Periods, handler.dayLogService, handler.settingsService)
	handler.dataService = services.NewDataService(repos.Data)
	return handler
}

func (handler *Handler) today() calendar.Date {
	return calendar.In(handler.now(), handler.location)
}
