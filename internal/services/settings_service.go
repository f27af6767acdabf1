package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/luna/internal/models"
)

const (
	MaxCycleLength = 90
	MinAge         = 1
	MaxAge         = 120
)

var (
	ErrInvalidAge         = errors.New("invalid age")
	ErrSettingsLoadFailed = errors.New("load settings failed")
	ErrSettingsSaveFailed = errors.New("save settings failed")
)

type SettingsRepository interface {
	LoadSettings() (models.Settings, bool, error)
	SaveSettings(settings *models.Settings) error
}

type SettingsInput struct {
	Age             *int
	CycleLength     int
	PeriodReminders bool
	OvulationAlerts bool
	SymptomPrompts  bool
}

type SettingsService struct {
	settings SettingsRepository
}

func NewSettingsService(settings SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Load returns the stored settings, or the defaults when nothing is stored.
func (service *SettingsService) Load() (models.Settings, error) {
	settings, found, err := service.settings.LoadSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", ErrSettingsLoadFailed, err)
	}
	if !found {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (service *SettingsService) CycleConfig() (CycleConfig, error) {
	settings, err := service.Load()
	if err != nil {
		return CycleConfig{}, err
	}
	return CycleConfigFromSettings(settings), nil
}

func (service *SettingsService) Update(input SettingsInput) (models.Settings, error) {
	if err := ValidateSettingsInput(input); err != nil {
		return models.Settings{}, err
	}

	settings := models.DefaultSettings()
	if input.Age != nil {
		age := *input.Age
		settings.Age = &age
	}
	settings.CycleLength = input.CycleLength
	settings.PeriodReminders = input.PeriodReminders
	settings.OvulationAlerts = input.OvulationAlerts
	settings.SymptomPrompts = input.SymptomPrompts

	if err := service.settings.SaveSettings(&settings); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", ErrSettingsSaveFailed, err)
	}
	return settings, nil
}

func ValidateSettingsInput(input SettingsInput) error {
	if _, err := NewCycleConfig(input.CycleLength); err != nil {
		return err
	}
	if input.CycleLength > MaxCycleLength {
		return ErrInvalidCycleLength
	}
	if input.Age != nil && (*input.Age < MinAge || *input.Age > MaxAge) {
		return ErrInvalidAge
	}
	return nil
}

// CycleConfigFromSettings falls back to the default length when a stored
// row carries a non-positive cycle length.
func CycleConfigFromSettings(settings models.Settings) CycleConfig {
	config, err := NewCycleConfig(settings.CycleLength)
	if err != nil {
		return DefaultCycleConfig()
	}
	return config
}
