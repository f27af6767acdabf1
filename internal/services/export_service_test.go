package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/terraincognita07/luna/internal/models"
)

func newExportFixture() *memoryStore {
	store := newMemoryStore()
	endDate := day("2025-01-03")
	store.periods = []models.Period{
		{ID: "p1", StartDate: day("2025-01-01"), EndDate: &endDate, Flow: models.FlowHeavy},
		{ID: "p2", StartDate: day("2025-01-29"), Flow: models.FlowLight},
	}
	store.entries[day("2025-01-02")] = models.DayEntry{Day: day("2025-01-02"), Symptoms: []string{"Cramps", "Back pain"}}
	store.entries[day("2025-02-10")] = models.DayEntry{Day: day("2025-02-10"), Mood: "Calm"}
	return store
}

func TestExportSnapshotKeysByDate(t *testing.T) {
	store := newExportFixture()
	snapshot, err := NewExportService(store, store, store).Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if len(snapshot.Periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(snapshot.Periods))
	}
	if got := snapshot.Symptoms["2025-01-02"]; len(got) != 2 || got[1] != "Back pain" {
		t.Fatalf("unexpected symptoms %v", snapshot.Symptoms)
	}
	if _, ok := snapshot.Symptoms["2025-02-10"]; ok {
		t.Fatal("mood-only day must not appear in symptoms")
	}
	if snapshot.Moods["2025-02-10"] != "Calm" || len(snapshot.Moods) != 1 {
		t.Fatalf("unexpected moods %v", snapshot.Moods)
	}
	if snapshot.Settings.CycleLength != 28 {
		t.Fatalf("expected default settings, got %+v", snapshot.Settings)
	}
}

func TestExportSnapshotEmptyStore(t *testing.T) {
	store := newMemoryStore()
	snapshot, err := NewExportService(store, store, store).Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snapshot.Periods == nil || snapshot.Symptoms == nil || snapshot.Moods == nil {
		t.Fatalf("expected empty collections, got %+v", snapshot)
	}
}

func TestExportSummary(t *testing.T) {
	store := newExportFixture()
	summary, err := NewExportService(store, store, store).Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !summary.HasData || summary.TotalPeriods != 2 || summary.TotalDays != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.DateFrom != "2025-01-01" || summary.DateTo != "2025-02-10" {
		t.Fatalf("unexpected range %s..%s", summary.DateFrom, summary.DateTo)
	}

	empty := newMemoryStore()
	summary, err = NewExportService(empty, empty, empty).Summary()
	if err != nil {
		t.Fatalf("empty summary: %v", err)
	}
	if summary.HasData {
		t.Fatalf("expected no data, got %+v", summary)
	}
}

func TestWritePeriodsCSV(t *testing.T) {
	store := newExportFixture()
	var out bytes.Buffer
	if err := NewExportService(store, store, store).WritePeriodsCSV(&out); err != nil {
		t.Fatalf("write periods: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"ID,Start date,End date,Flow",
		"p1,2025-01-01,2025-01-03,heavy",
		"p2,2025-01-29,,light",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for index := range want {
		if lines[index] != want[index] {
			t.Fatalf("line %d: expected %q, got %q", index, want[index], lines[index])
		}
	}
}

func TestWriteDaysCSV(t *testing.T) {
	store := newExportFixture()
	var out bytes.Buffer
	if err := NewExportService(store, store, store).WriteDaysCSV(&out); err != nil {
		t.Fatalf("write days: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header, three days of p1, five days of p2, one mood-only day
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Date,Period,Cramps,Headache,Bloating,Fatigue,Mood swings,Acne,Back pain,Nausea,Mood" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[2] != "2025-01-02,Yes,Yes,No,No,No,No,No,Yes,No," {
		t.Fatalf("unexpected symptom row %q", lines[2])
	}
	if lines[9] != "2025-02-10,No,No,No,No,No,No,No,No,No,Calm" {
		t.Fatalf("unexpected mood row %q", lines[9])
	}
}
