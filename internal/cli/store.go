package cli

import (
	"fmt"

	"github.com/terraincognita07/luna/internal/config"
	"github.com/terraincognita07/luna/internal/db"
	"github.com/terraincognita07/luna/internal/services"
	"gorm.io/gorm"
)

// serviceSet wires the repositories of one open database into the services
// the commands need.
type serviceSet struct {
	database *gorm.DB
	repos    *db.Repositories
	dayLog   *services.DayLogService
	settings *services.SettingsService
	stats    *services.StatsService
	export   *services.ExportService
	data     *services.DataService
}

func openServiceSet(cfg *config.Config) (*serviceSet, error) {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	dayLog := services.NewDayLogService(repos.DayEntries)
	settings := services.NewSettingsService(repos.Settings)
	return &serviceSet{
		database: database,
		repos:    repos,
		dayLog:   dayLog,
		settings: settings,
		stats:    services.NewStatsService(repos.Periods, dayLog, settings),
		export:   services.NewExportService(repos.Periods, dayLog, settings),
		data:     services.NewDataService(repos.Data),
	}, nil
}

func (set *serviceSet) Close() error {
	sqlDB, err := set.database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
