package db

import "gorm.io/gorm"

type Repositories struct {
	Periods    *PeriodRepository
	DayEntries *DayEntryRepository
	Settings   *SettingsRepository
	Data       *DataRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Periods:    NewPeriodRepository(database),
		DayEntries: NewDayEntryRepository(database),
		Settings:   NewSettingsRepository(database),
		Data:       NewDataRepository(database),
	}
}
