package services

import (
	"time"

	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

type StatsPeriodReader interface {
	ListPeriods() ([]models.Period, error)
}

type StatsDayReader interface {
	ListEntries() ([]models.DayEntry, error)
}

type StatsSettingsReader interface {
	Load() (models.Settings, error)
}

// StatsService loads the stored log and hands plain values to the engine.
// It is the only place that reads the store on behalf of presentation.
type StatsService struct {
	periods  StatsPeriodReader
	days     StatsDayReader
	settings StatsSettingsReader
}

type Dashboard struct {
	Today               calendar.Date `json:"today"`
	CycleDay            int           `json:"cycle_day"`
	DaysUntilNextPeriod *int          `json:"days_until_next_period"`
	AverageCycleLength  int           `json:"average_cycle_length"`
	Insight             Insight       `json:"insight"`
}

type Insights struct {
	AverageCycleLength int                `json:"average_cycle_length"`
	Regularity         Regularity         `json:"regularity"`
	RegularityLabel    string             `json:"regularity_label"`
	MostCommonSymptom  *string            `json:"most_common_symptom"`
	CycleLengths       []int              `json:"cycle_lengths"`
	SymptomFrequencies []SymptomFrequency `json:"symptom_frequencies"`
	NextPeriod         *Prediction        `json:"next_period"`
	NextOvulation      *Prediction        `json:"next_ovulation"`
}

type DayClassification struct {
	Day      calendar.Date `json:"day"`
	CycleDay int           `json:"cycle_day"`
	Class    DayClass      `json:"class"`
	InPeriod bool          `json:"in_period"`
}

type statsSnapshot struct {
	periods []models.Period
	entries []models.DayEntry
	config  CycleConfig
}

func NewStatsService(periods StatsPeriodReader, days StatsDayReader, settings StatsSettingsReader) *StatsService {
	return &StatsService{
		periods:  periods,
		days:     days,
		settings: settings,
	}
}

func (service *StatsService) CycleStats(today calendar.Date) (CycleStats, error) {
	snapshot, err := service.load()
	if err != nil {
		return CycleStats{}, err
	}
	return BuildCycleStats(snapshot.periods, snapshot.config, today), nil
}

func (service *StatsService) Dashboard(today calendar.Date) (Dashboard, error) {
	snapshot, err := service.load()
	if err != nil {
		return Dashboard{}, err
	}

	dashboard := Dashboard{
		Today:              today,
		CycleDay:           CycleDayOf(today, snapshot.periods),
		AverageCycleLength: AverageCycleLength(snapshot.periods, snapshot.config),
		Insight:            TodayInsight(today, snapshot.periods, snapshot.config),
	}
	if days, ok := DaysUntilNextPeriod(today, snapshot.periods, snapshot.config); ok {
		dashboard.DaysUntilNextPeriod = &days
	}
	return dashboard, nil
}

func (service *StatsService) Insights() (Insights, error) {
	snapshot, err := service.load()
	if err != nil {
		return Insights{}, err
	}

	regularity := CycleRegularity(snapshot.periods)
	symptomLog := BuildSymptomLog(snapshot.entries)
	insights := Insights{
		AverageCycleLength: AverageCycleLength(snapshot.periods, snapshot.config),
		Regularity:         regularity,
		RegularityLabel:    regularity.Label(),
		CycleLengths:       CycleLengthHistory(snapshot.periods),
		SymptomFrequencies: SymptomFrequencies(symptomLog),
	}
	if symptom, ok := MostCommonSymptom(symptomLog); ok {
		insights.MostCommonSymptom = &symptom
	}
	if prediction, ok := NextPeriodPrediction(snapshot.periods, snapshot.config); ok {
		insights.NextPeriod = &prediction
	}
	if prediction, ok := NextOvulationPrediction(snapshot.periods, snapshot.config); ok {
		insights.NextOvulation = &prediction
	}
	return insights, nil
}

func (service *StatsService) ClassifyDay(day calendar.Date) (DayClassification, error) {
	snapshot, err := service.load()
	if err != nil {
		return DayClassification{}, err
	}
	return DayClassification{
		Day:      day,
		CycleDay: CycleDayOf(day, snapshot.periods),
		Class:    ClassifyDay(day, snapshot.periods, snapshot.config),
		InPeriod: IsPeriodDay(day, snapshot.periods),
	}, nil
}

func (service *StatsService) CalendarMonth(year int, month time.Month, today calendar.Date) (CalendarMonth, error) {
	snapshot, err := service.load()
	if err != nil {
		return CalendarMonth{}, err
	}
	return BuildCalendarMonth(year, month, snapshot.periods, snapshot.entries, snapshot.config, today), nil
}

func (service *StatsService) load() (statsSnapshot, error) {
	periods, err := service.periods.ListPeriods()
	if err != nil {
		return statsSnapshot{}, err
	}
	entries, err := service.days.ListEntries()
	if err != nil {
		return statsSnapshot{}, err
	}
	settings, err := service.settings.Load()
	if err != nil {
		return statsSnapshot{}, err
	}
	return statsSnapshot{
		periods: periods,
		entries: entries,
		config:  CycleConfigFromSettings(settings),
	}, nil
}
