package db

import (
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DayEntryRepository struct {
	database *gorm.DB
}

func NewDayEntryRepository(database *gorm.DB) *DayEntryRepository {
	return &DayEntryRepository{database: database}
}

func (repo *DayEntryRepository) FindDayEntry(day calendar.Date) (models.DayEntry, bool, error) {
	entry := models.DayEntry{}
	result := repo.database.Where("day = ?", day).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DayEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayEntry{}, false, nil
	}
	return entry, true, nil
}

// SaveDayEntry inserts the entry or overwrites the row for the same day.
func (repo *DayEntryRepository) SaveDayEntry(entry *models.DayEntry) error {
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"symptoms", "mood", "updated_at"}),
	}).Create(entry).Error
}

func (repo *DayEntryRepository) ListDayEntries() ([]models.DayEntry, error) {
	entries := make([]models.DayEntry, 0)
	if err := repo.database.Order("day ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
