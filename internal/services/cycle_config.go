package services

import (
	"errors"

	"github.com/terraincognita07/luna/internal/models"
)

var ErrInvalidCycleLength = errors.New("invalid cycle length")

// CycleConfig carries the user's typical cycle length. The zero value
// behaves like DefaultCycleConfig.
type CycleConfig struct {
	typicalCycleLength int
}

func NewCycleConfig(typicalCycleLength int) (CycleConfig, error) {
	if typicalCycleLength <= 0 {
		return CycleConfig{}, ErrInvalidCycleLength
	}
	return CycleConfig{typicalCycleLength: typicalCycleLength}, nil
}

func DefaultCycleConfig() CycleConfig {
	return CycleConfig{typicalCycleLength: models.DefaultCycleLength}
}

func (config CycleConfig) TypicalCycleLength() int {
	if config.typicalCycleLength <= 0 {
		return models.DefaultCycleLength
	}
	return config.typicalCycleLength
}
