package db

import (
	"github.com/terraincognita07/luna/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository keeps the single settings row.
type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) LoadSettings() (models.Settings, bool, error) {
	settings := models.Settings{}
	result := repo.database.Where("id = ?", models.SettingsRowID).Limit(1).Find(&settings)
	if result.Error != nil {
		return models.Settings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Settings{}, false, nil
	}
	return settings, true, nil
}

func (repo *SettingsRepository) SaveSettings(settings *models.Settings) error {
	settings.ID = models.SettingsRowID
	return repo.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(settings).Error
}
