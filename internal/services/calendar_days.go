package services

import (
	"time"

	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

const calendarGridCells = 42

type CalendarDayState struct {
	Date        calendar.Date `json:"date"`
	Day         int           `json:"day"`
	InMonth     bool          `json:"in_month"`
	IsToday     bool          `json:"is_today"`
	CycleDay    int           `json:"cycle_day"`
	Class       DayClass      `json:"class"`
	HasSymptoms bool          `json:"has_symptoms"`
	Mood        string        `json:"mood,omitempty"`
}

type CalendarMonth struct {
	Year  int                `json:"year"`
	Month time.Month         `json:"month"`
	Title string             `json:"title"`
	Days  []CalendarDayState `json:"days"`
}

// BuildCalendarMonth lays out a six-week grid starting on the Sunday on or
// before the first of the month.
func BuildCalendarMonth(year int, month time.Month, periods []models.Period, entries []models.DayEntry, config CycleConfig, today calendar.Date) CalendarMonth {
	monthStart := calendar.New(year, month, 1)
	gridStart := monthStart.AddDays(-int(monthStart.Weekday()))

	entryByDay := make(map[calendar.Date]models.DayEntry, len(entries))
	for _, entry := range entries {
		entryByDay[entry.Day] = entry
	}

	days := make([]CalendarDayState, 0, calendarGridCells)
	for offset := 0; offset < calendarGridCells; offset++ {
		day := gridStart.AddDays(offset)
		entry := entryByDay[day]
		days = append(days, CalendarDayState{
			Date:        day,
			Day:         day.Day,
			InMonth:     day.Month == monthStart.Month,
			IsToday:     day == today,
			CycleDay:    CycleDayOf(day, periods),
			Class:       ClassifyDay(day, periods, config),
			HasSymptoms: len(entry.Symptoms) > 0,
			Mood:        entry.Mood,
		})
	}

	return CalendarMonth{
		Year:  monthStart.Year,
		Month: monthStart.Month,
		Title: monthStart.Time().Format("January 2006"),
		Days:  days,
	}
}
