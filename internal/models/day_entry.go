package models

import (
	"time"

	"github.com/terraincognita07/luna/internal/calendar"
)

// DayEntry holds everything logged for one calendar day besides periods.
type DayEntry struct {
	Day       calendar.Date `gorm:"primaryKey;type:text" json:"day"`
	Symptoms  []string      `gorm:"serializer:json" json:"symptoms"`
	Mood      string        `gorm:"not null" json:"mood"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (entry DayEntry) IsEmpty() bool {
	return len(entry.Symptoms) == 0 && entry.Mood == ""
}
