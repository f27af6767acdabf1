package db

import (
	"github.com/terraincognita07/luna/internal/models"
	"gorm.io/gorm"
)

type PeriodRepository struct {
	database *gorm.DB
}

func NewPeriodRepository(database *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: database}
}

// ListPeriods returns periods in the order they were logged.
func (repo *PeriodRepository) ListPeriods() ([]models.Period, error) {
	periods := make([]models.Period, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (repo *PeriodRepository) CreatePeriod(period *models.Period) error {
	return repo.database.Create(period).Error
}
