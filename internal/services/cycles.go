package services

import (
	"math"
	"sort"

	"github.com/samber/lo"
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

const (
	fertileWindowFirstDay = 10
	fertileWindowLastDay  = 16
	pmsWindowDays         = 7
	lutealPhaseDays       = 14

	predictedPeriodToleranceDays = 2

	minRegularitySamples        = 3
	regularMaxStdDev            = 2.0
	slightlyIrregularMaxStdDev  = 4.0
	establishedPeriodConfidence = 85
	earlyPeriodConfidence       = 60
	ovulationConfidence         = 75
)

type Regularity string

const (
	RegularityInsufficientData  Regularity = "insufficient_data"
	RegularityRegular           Regularity = "regular"
	RegularitySlightlyIrregular Regularity = "slightly_irregular"
	RegularityIrregular         Regularity = "irregular"
)

func (regularity Regularity) Label() string {
	switch regularity {
	case RegularityRegular:
		return "Regular"
	case RegularitySlightlyIrregular:
		return "Slightly irregular"
	case RegularityIrregular:
		return "Irregular"
	default:
		return "Insufficient data"
	}
}

type DayClass string

const (
	DayClassNone            DayClass = "none"
	DayClassPeriod          DayClass = "period"
	DayClassFertile         DayClass = "fertile"
	DayClassPMS             DayClass = "pms"
	DayClassPredictedPeriod DayClass = "predicted_period"
)

// Prediction is a forecast date with a fixed heuristic confidence.
type Prediction struct {
	Date              calendar.Date `json:"date"`
	ConfidencePercent int           `json:"confidence_percent"`
}

// LastPeriodStart returns the latest logged start date.
func LastPeriodStart(periods []models.Period) (calendar.Date, bool) {
	if len(periods) == 0 {
		return calendar.Date{}, false
	}
	latest := periods[0].StartDate
	for _, period := range periods[1:] {
		if period.StartDate.After(latest) {
			latest = period.StartDate
		}
	}
	return latest, true
}

// CycleDayOf is 1 on the most recent period start and 0 when there is no
// period or day precedes it.
func CycleDayOf(day calendar.Date, periods []models.Period) int {
	lastStart, ok := LastPeriodStart(periods)
	if !ok {
		return 0
	}
	cycleDay := day.DaysSince(lastStart) + 1
	if cycleDay <= 0 {
		return 0
	}
	return cycleDay
}

func AverageCycleLength(periods []models.Period, config CycleConfig) int {
	if len(periods) < 2 {
		return config.TypicalCycleLength()
	}
	return int(math.Round(averageInts(cycleLengths(sortedStarts(periods)))))
}

// CycleLengthHistory never returns an empty slice: with fewer than two
// periods it reports the default cycle length regardless of config.
func CycleLengthHistory(periods []models.Period) []int {
	if len(periods) < 2 {
		return []int{models.DefaultCycleLength}
	}
	return cycleLengths(sortedStarts(periods))
}

func CycleRegularity(periods []models.Period) Regularity {
	lengths := CycleLengthHistory(periods)
	if len(lengths) < minRegularitySamples {
		return RegularityInsufficientData
	}

	deviation := populationStdDev(lengths)
	switch {
	case deviation <= regularMaxStdDev:
		return RegularityRegular
	case deviation <= slightlyIrregularMaxStdDev:
		return RegularitySlightlyIrregular
	default:
		return RegularityIrregular
	}
}

func NextPeriodPrediction(periods []models.Period, config CycleConfig) (Prediction, bool) {
	lastStart, ok := LastPeriodStart(periods)
	if !ok {
		return Prediction{}, false
	}

	confidence := earlyPeriodConfidence
	if len(CycleLengthHistory(periods)) >= minRegularitySamples {
		confidence = establishedPeriodConfidence
	}
	return Prediction{
		Date:              lastStart.AddDays(AverageCycleLength(periods, config)),
		ConfidencePercent: confidence,
	}, true
}

// NextOvulationPrediction places ovulation a luteal phase before the next
// period. The offset is not clamped, so an average below 14 days yields a
// date before the last period start.
func NextOvulationPrediction(periods []models.Period, config CycleConfig) (Prediction, bool) {
	lastStart, ok := LastPeriodStart(periods)
	if !ok {
		return Prediction{}, false
	}
	offset := AverageCycleLength(periods, config) - lutealPhaseDays
	return Prediction{
		Date:              lastStart.AddDays(offset),
		ConfidencePercent: ovulationConfidence,
	}, true
}

// DaysUntilNextPeriod counts whole days from today to the predicted start,
// never going below zero.
func DaysUntilNextPeriod(today calendar.Date, periods []models.Period, config CycleConfig) (int, bool) {
	prediction, ok := NextPeriodPrediction(periods, config)
	if !ok {
		return 0, false
	}
	return max(prediction.Date.DaysSince(today), 0), true
}

// IsPeriodDay reports whether day falls inside any logged period window.
func IsPeriodDay(day calendar.Date, periods []models.Period) bool {
	return lo.ContainsBy(periods, func(period models.Period) bool {
		return period.Contains(day)
	})
}

// FindPeriodContaining returns the first logged period whose window covers day.
func FindPeriodContaining(day calendar.Date, periods []models.Period) (models.Period, bool) {
	return lo.Find(periods, func(period models.Period) bool {
		return period.Contains(day)
	})
}

// ClassifyDay evaluates period, fertile, PMS and predicted-period in that
// order. Days without a cycle day (before the last start or with no data)
// stay unclassified. PMS uses the configured length, not the average.
func ClassifyDay(day calendar.Date, periods []models.Period, config CycleConfig) DayClass {
	cycleDay := CycleDayOf(day, periods)
	if cycleDay <= 0 {
		return DayClassNone
	}

	cycleLength := config.TypicalCycleLength()
	switch {
	case IsPeriodDay(day, periods):
		return DayClassPeriod
	case cycleDay >= fertileWindowFirstDay && cycleDay <= fertileWindowLastDay:
		return DayClassFertile
	case cycleDay > cycleLength-pmsWindowDays && cycleDay < cycleLength:
		return DayClassPMS
	case isNearPredictedPeriod(day, periods, config):
		return DayClassPredictedPeriod
	default:
		return DayClassNone
	}
}

func isNearPredictedPeriod(day calendar.Date, periods []models.Period, config CycleConfig) bool {
	prediction, ok := NextPeriodPrediction(periods, config)
	if !ok {
		return false
	}
	distance := day.DaysSince(prediction.Date)
	return distance >= -predictedPeriodToleranceDays && distance <= predictedPeriodToleranceDays
}

// sortedStarts copies start dates into ascending order without touching
// the caller's slice.
func sortedStarts(periods []models.Period) []calendar.Date {
	starts := lo.Map(periods, func(period models.Period, _ int) calendar.Date {
		return period.StartDate
	})
	sort.SliceStable(starts, func(i, j int) bool {
		return starts[i].Before(starts[j])
	})
	return starts
}

func cycleLengths(starts []calendar.Date) []int {
	if len(starts) < 2 {
		return nil
	}

	lengths := make([]int, 0, len(starts)-1)
	for i := 1; i < len(starts); i++ {
		lengths = append(lengths, starts[i].DaysSince(starts[i-1]))
	}
	return lengths
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(lo.Sum(values)) / float64(len(values))
}

func populationStdDev(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := averageInts(values)
	var variance float64
	for _, value := range values {
		delta := float64(value) - mean
		variance += delta * delta
	}
	return math.Sqrt(variance / float64(len(values)))
}
