package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/luna/internal/models"
)

func TestBuildCalendarMonthGrid(t *testing.T) {
	periods := periodsStartingOn("2025-02-03")
	entries := []models.DayEntry{
		{Day: day("2025-02-04"), Symptoms: []string{"Cramps"}, Mood: "Calm"},
	}

	month := BuildCalendarMonth(2025, time.February, periods, entries, DefaultCycleConfig(), day("2025-02-14"))

	if len(month.Days) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(month.Days))
	}
	if month.Title != "February 2025" {
		t.Fatalf("unexpected title %q", month.Title)
	}
	if first := month.Days[0]; first.Date.String() != "2025-01-26" || first.InMonth {
		t.Fatalf("expected grid to start on Sunday 2025-01-26 outside the month, got %+v", first)
	}

	byDate := make(map[string]CalendarDayState, len(month.Days))
	for _, state := range month.Days {
		byDate[state.Date.String()] = state
	}

	if state := byDate["2025-02-02"]; state.Class != DayClassNone || state.CycleDay != 0 {
		t.Fatalf("expected day before the period to stay unclassified, got %+v", state)
	}
	if state := byDate["2025-02-04"]; state.Class != DayClassPeriod || !state.HasSymptoms || state.Mood != "Calm" {
		t.Fatalf("unexpected period day %+v", state)
	}
	if state := byDate["2025-02-14"]; !state.IsToday || state.Class != DayClassFertile {
		t.Fatalf("expected fertile today on cycle day 12, got %+v", state)
	}
	if state := byDate["2025-03-03"]; state.Class != DayClassPredictedPeriod || state.InMonth {
		t.Fatalf("expected predicted period spilling into March, got %+v", state)
	}
}
