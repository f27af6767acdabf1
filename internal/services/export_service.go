package services

import (
	"io"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

const ExportFileBaseName = "luna-cycle-data"

type ExportPeriodReader interface {
	ListPeriods() ([]models.Period, error)
}

type ExportDayReader interface {
	ListEntries() ([]models.DayEntry, error)
}

type ExportSettingsReader interface {
	Load() (models.Settings, error)
}

type ExportService struct {
	periods  ExportPeriodReader
	days     ExportDayReader
	settings ExportSettingsReader
}

// Snapshot is the whole user data blob, keyed by YYYY-MM-DD for day logs.
type Snapshot struct {
	Periods  []models.Period     `json:"periods"`
	Symptoms map[string][]string `json:"symptoms"`
	Moods    map[string]string   `json:"moods"`
	Settings models.Settings     `json:"settings"`
}

type ExportSummary struct {
	TotalPeriods int    `json:"total_periods"`
	TotalDays    int    `json:"total_days"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportPeriodRow struct {
	ID        string `csv:"ID"`
	StartDate string `csv:"Start date"`
	EndDate   string `csv:"End date"`
	Flow      string `csv:"Flow"`
}

type ExportDayRow struct {
	Date       string `csv:"Date"`
	Period     string `csv:"Period"`
	Cramps     string `csv:"Cramps"`
	Headache   string `csv:"Headache"`
	Bloating   string `csv:"Bloating"`
	Fatigue    string `csv:"Fatigue"`
	MoodSwings string `csv:"Mood swings"`
	Acne       string `csv:"Acne"`
	BackPain   string `csv:"Back pain"`
	Nausea     string `csv:"Nausea"`
	Mood       string `csv:"Mood"`
}

func NewExportService(periods ExportPeriodReader, days ExportDayReader, settings ExportSettingsReader) *ExportService {
	return &ExportService{
		periods:  periods,
		days:     days,
		settings: settings,
	}
}

func (service *ExportService) Snapshot() (Snapshot, error) {
	periods, err := service.periods.ListPeriods()
	if err != nil {
		return Snapshot{}, err
	}
	entries, err := service.days.ListEntries()
	if err != nil {
		return Snapshot{}, err
	}
	settings, err := service.settings.Load()
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{
		Periods:  periods,
		Symptoms: make(map[string][]string),
		Moods:    make(map[string]string),
		Settings: settings,
	}
	if snapshot.Periods == nil {
		snapshot.Periods = []models.Period{}
	}
	for day, symptoms := range BuildSymptomLog(entries) {
		snapshot.Symptoms[day.String()] = symptoms
	}
	for day, mood := range BuildMoodLog(entries) {
		snapshot.Moods[day.String()] = mood
	}
	return snapshot, nil
}

func (service *ExportService) Summary() (ExportSummary, error) {
	periods, err := service.periods.ListPeriods()
	if err != nil {
		return ExportSummary{}, err
	}
	entries, err := service.days.ListEntries()
	if err != nil {
		return ExportSummary{}, err
	}

	days := lo.Map(entries, func(entry models.DayEntry, _ int) calendar.Date { return entry.Day })
	for _, period := range periods {
		days = append(days, period.StartDate, period.WindowEnd())
	}
	if len(days) == 0 {
		return ExportSummary{}, nil
	}

	first, last := days[0], days[0]
	for _, day := range days[1:] {
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}
	return ExportSummary{
		TotalPeriods: len(periods),
		TotalDays:    len(entries),
		HasData:      true,
		DateFrom:     first.String(),
		DateTo:       last.String(),
	}, nil
}

func (service *ExportService) WritePeriodsCSV(out io.Writer) error {
	periods, err := service.periods.ListPeriods()
	if err != nil {
		return err
	}

	rows := lo.Map(periods, func(period models.Period, _ int) ExportPeriodRow {
		row := ExportPeriodRow{
			ID:        period.ID,
			StartDate: period.StartDate.String(),
			Flow:      period.Flow,
		}
		if period.EndDate != nil {
			row.EndDate = period.EndDate.String()
		}
		return row
	})
	return gocsv.Marshal(&rows, out)
}

// WriteDaysCSV writes one row per day that has a log entry or lies inside a
// logged period window, in chronological order.
func (service *ExportService) WriteDaysCSV(out io.Writer) error {
	periods, err := service.periods.ListPeriods()
	if err != nil {
		return err
	}
	entries, err := service.days.ListEntries()
	if err != nil {
		return err
	}

	entryByDay := make(map[calendar.Date]models.DayEntry, len(entries))
	for _, entry := range entries {
		entryByDay[entry.Day] = entry
	}
	daySet := make(map[calendar.Date]struct{}, len(entries))
	for day := range entryByDay {
		daySet[day] = struct{}{}
	}
	for _, period := range periods {
		for day := period.StartDate; !day.After(period.WindowEnd()); day = day.AddDays(1) {
			daySet[day] = struct{}{}
		}
	}

	days := lo.Keys(daySet)
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	rows := make([]ExportDayRow, 0, len(days))
	for _, day := range days {
		entry := entryByDay[day]
		rows = append(rows, buildExportDayRow(day, IsPeriodDay(day, periods), entry))
	}
	return gocsv.Marshal(&rows, out)
}

func buildExportDayRow(day calendar.Date, isPeriod bool, entry models.DayEntry) ExportDayRow {
	logged := make(map[string]bool, len(entry.Symptoms))
	for _, symptom := range entry.Symptoms {
		logged[strings.ToLower(symptom)] = true
	}
	flag := func(name string) string { return csvYesNo(logged[strings.ToLower(name)]) }

	return ExportDayRow{
		Date:       day.String(),
		Period:     csvYesNo(isPeriod),
		Cramps:     flag("Cramps"),
		Headache:   flag("Headache"),
		Bloating:   flag("Bloating"),
		Fatigue:    flag("Fatigue"),
		MoodSwings: flag("Mood swings"),
		Acne:       flag("Acne"),
		BackPain:   flag("Back pain"),
		Nausea:     flag("Nausea"),
		Mood:       entry.Mood,
	}
}

func csvYesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
