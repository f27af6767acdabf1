package services

import (
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

// CycleStats is a snapshot of everything the engine derives for one
// reference day. It is recomputed on every call and never stored.
type CycleStats struct {
	CurrentCycleDay     int           `json:"current_cycle_day"`
	CycleLengths        []int         `json:"cycle_lengths"`
	AverageCycleLength  int           `json:"average_cycle_length"`
	Regularity          Regularity    `json:"regularity"`
	LastPeriodStart     calendar.Date `json:"last_period_start"`
	NextPeriod          *Prediction   `json:"next_period"`
	NextOvulation       *Prediction   `json:"next_ovulation"`
	DaysUntilNextPeriod *int          `json:"days_until_next_period"`
	Insight             Insight       `json:"insight"`
}

func BuildCycleStats(periods []models.Period, config CycleConfig, today calendar.Date) CycleStats {
	stats := CycleStats{
		CurrentCycleDay:    CycleDayOf(today, periods),
		CycleLengths:       CycleLengthHistory(periods),
		AverageCycleLength: AverageCycleLength(periods, config),
		Regularity:         CycleRegularity(periods),
		Insight:            TodayInsight(today, periods, config),
	}

	if lastStart, ok := LastPeriodStart(periods); ok {
		stats.LastPeriodStart = lastStart
	}
	if prediction, ok := NextPeriodPrediction(periods, config); ok {
		stats.NextPeriod = &prediction
	}
	if prediction, ok := NextOvulationPrediction(periods, config); ok {
		stats.NextOvulation = &prediction
	}
	if days, ok := DaysUntilNextPeriod(today, periods, config); ok {
		stats.DaysUntilNextPeriod = &days
	}
	return stats
}
