package models

import (
	"time"

	"github.com/terraincognita07/luna/internal/calendar"
)

const (
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

const (
	DefaultCycleLength = 28
	// DefaultPeriodWindowDays is how far past its start an open-ended
	// period still counts as a period day.
	DefaultPeriodWindowDays = 4
)

// Period is a logged menstrual period. Entries are append-only; EndDate
// is nil when the user did not record one.
type Period struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	StartDate calendar.Date  `gorm:"type:text;not null;index" json:"start_date"`
	EndDate   *calendar.Date `gorm:"type:text" json:"end_date"`
	Flow      string         `gorm:"not null" json:"flow"`
	CreatedAt time.Time      `json:"created_at"`
}

// WindowEnd is the last day counted as part of the period.
func (period Period) WindowEnd() calendar.Date {
	if period.EndDate != nil && !period.EndDate.IsZero() {
		return *period.EndDate
	}
	return period.StartDate.AddDays(DefaultPeriodWindowDays)
}

func (period Period) Contains(day calendar.Date) bool {
	return day.Between(period.StartDate, period.WindowEnd())
}

func Flows() []string {
	return []string{FlowSpotting, FlowLight, FlowMedium, FlowHeavy}
}
