package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/luna/internal/logger"
)

var ErrClearDataFailed = errors.New("clear data failed")

type DataClearer interface {
	ClearAllData() error
}

type DataService struct {
	store DataClearer
}

func NewDataService(store DataClearer) *DataService {
	return &DataService{store: store}
}

// ClearAll wipes periods, day logs and settings. Subsequent loads see the
// empty defaults.
func (service *DataService) ClearAll() error {
	if err := service.store.ClearAllData(); err != nil {
		return fmt.Errorf("%w: %v", ErrClearDataFailed, err)
	}
	logger.Log.Info("all tracking data cleared")
	return nil
}
