package models

const SettingsRowID = 1

type Settings struct {
	ID              uint `gorm:"primaryKey" json:"-"`
	Age             *int `json:"age"`
	CycleLength     int  `gorm:"not null" json:"cycle_length"`
	PeriodReminders bool `gorm:"not null" json:"period_reminders"`
	OvulationAlerts bool `gorm:"not null" json:"ovulation_alerts"`
	SymptomPrompts  bool `gorm:"not null" json:"symptom_prompts"`
}

func DefaultSettings() Settings {
	return Settings{
		ID:              SettingsRowID,
		CycleLength:     DefaultCycleLength,
		PeriodReminders: true,
		OvulationAlerts: true,
		SymptomPrompts:  false,
	}
}

func (Settings) TableName() string {
	return "settings"
}
