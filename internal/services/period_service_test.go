package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

func newTestPeriodService(store *memoryStore) *PeriodService {
	service := NewPeriodService(store)
	counter := 0
	service.newID = func() string {
		counter++
		return string(rune('A' + counter - 1))
	}
	service.now = func() time.Time { return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC) }
	return service
}

func TestLogPeriodValidation(t *testing.T) {
	service := newTestPeriodService(newMemoryStore())
	end := day("2025-01-01")
	typoEnd := day("2225-01-01")
	tooLong := day("2025-04-03")

	cases := []struct {
		name  string
		input PeriodInput
		want  error
	}{
		{name: "missing start", input: PeriodInput{Flow: models.FlowLight}, want: ErrPeriodStartRequired},
		{name: "missing flow", input: PeriodInput{StartDate: day("2025-01-02")}, want: ErrInvalidFlow},
		{name: "unknown flow", input: PeriodInput{StartDate: day("2025-01-02"), Flow: "torrential"}, want: ErrInvalidFlow},
		{name: "end before start", input: PeriodInput{StartDate: day("2025-01-02"), EndDate: &end, Flow: models.FlowHeavy}, want: ErrPeriodEndBeforeStart},
		{name: "year typo in end", input: PeriodInput{StartDate: day("2025-01-01"), EndDate: &typoEnd, Flow: models.FlowLight}, want: ErrPeriodTooLong},
		{name: "end past max cycle", input: PeriodInput{StartDate: day("2025-01-02"), EndDate: &tooLong, Flow: models.FlowLight}, want: ErrPeriodTooLong},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.LogPeriod(testCase.input); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}
}

func TestLogPeriodAppendsNormalizedEntry(t *testing.T) {
	store := newMemoryStore()
	service := newTestPeriodService(store)
	end := day("2025-01-06")

	period, err := service.LogPeriod(PeriodInput{StartDate: day("2025-01-02"), EndDate: &end, Flow: " Medium "})
	if err != nil {
		t.Fatalf("log period: %v", err)
	}
	if period.ID != "A" || period.Flow != models.FlowMedium {
		t.Fatalf("unexpected period %+v", period)
	}
	if period.EndDate == nil || period.EndDate.String() != "2025-01-06" {
		t.Fatalf("unexpected end date %v", period.EndDate)
	}
	if len(store.periods) != 1 {
		t.Fatalf("expected 1 stored period, got %d", len(store.periods))
	}

	empty := calendar.Date{}
	period, err = service.LogPeriod(PeriodInput{StartDate: day("2025-02-01"), EndDate: &empty, Flow: models.FlowSpotting})
	if err != nil {
		t.Fatalf("log period with blank end: %v", err)
	}
	if period.EndDate != nil {
		t.Fatalf("expected blank end date to be dropped, got %v", period.EndDate)
	}
}

func TestAddPeriodDayReusesExistingWindow(t *testing.T) {
	store := newMemoryStore()
	service := newTestPeriodService(store)

	first, created, err := service.AddPeriodDay(day("2025-01-01"), models.FlowHeavy)
	if err != nil || !created {
		t.Fatalf("expected first period to be created, got created=%v err=%v", created, err)
	}

	existing, created, err := service.AddPeriodDay(day("2025-01-05"), models.FlowLight)
	if err != nil {
		t.Fatalf("add period day: %v", err)
	}
	if created || existing.ID != first.ID {
		t.Fatalf("expected day inside default window to reuse %s, got %+v (created=%v)", first.ID, existing, created)
	}

	next, created, err := service.AddPeriodDay(day("2025-01-06"), models.FlowLight)
	if err != nil || !created || next.ID == first.ID {
		t.Fatalf("expected a new period after the window, got %+v created=%v err=%v", next, created, err)
	}
	if len(store.periods) != 2 {
		t.Fatalf("expected 2 stored periods, got %d", len(store.periods))
	}
}

func TestAddPeriodDayWrapsStoreErrors(t *testing.T) {
	store := newMemoryStore()
	store.err = errStoreUnavailable
	service := newTestPeriodService(store)

	if _, _, err := service.AddPeriodDay(day("2025-01-01"), models.FlowLight); !errors.Is(err, ErrPeriodLoadFailed) {
		t.Fatalf("expected ErrPeriodLoadFailed, got %v", err)
	}
}

func TestNewPeriodServiceAssignsSortableIDs(t *testing.T) {
	service := NewPeriodService(newMemoryStore())

	first, err := service.LogPeriod(PeriodInput{StartDate: day("2025-01-01"), Flow: models.FlowLight})
	if err != nil {
		t.Fatalf("log first: %v", err)
	}
	second, err := service.LogPeriod(PeriodInput{StartDate: day("2025-01-29"), Flow: models.FlowLight})
	if err != nil {
		t.Fatalf("log second: %v", err)
	}
	if len(first.ID) != 26 || first.ID >= second.ID {
		t.Fatalf("expected increasing ULIDs, got %q then %q", first.ID, second.ID)
	}
}

func TestLogPeriodAcceptsSpanAtMaxCycleLength(t *testing.T) {
	store := newMemoryStore()
	service := newTestPeriodService(store)
	end := day("2025-01-01").AddDays(MaxCycleLength)

	if _, err := service.LogPeriod(PeriodInput{StartDate: day("2025-01-01"), EndDate: &end, Flow: models.FlowLight}); err != nil {
		t.Fatalf("expected span of %d days to be accepted, got %v", MaxCycleLength, err)
	}
	if len(store.periods) != 1 {
		t.Fatalf("expected 1 stored period, got %d", len(store.periods))
	}
}
