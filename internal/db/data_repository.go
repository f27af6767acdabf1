package db

import (
	"fmt"

	"gorm.io/gorm"
)

type DataRepository struct {
	database *gorm.DB
}

func NewDataRepository(database *gorm.DB) *DataRepository {
	return &DataRepository{database: database}
}

// ClearAllData deletes every period, day entry and the settings row in one
// transaction.
func (repo *DataRepository) ClearAllData() error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"periods", "day_entries", "settings"} {
			if err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}
