package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

var (
	ErrPeriodStartRequired  = errors.New("period start date is required")
	ErrInvalidFlow          = errors.New("invalid flow intensity")
	ErrPeriodEndBeforeStart = errors.New("period end date is before start date")
	ErrPeriodTooLong        = errors.New("period is longer than the maximum cycle length")
	ErrPeriodLoadFailed     = errors.New("load periods failed")
	ErrPeriodCreateFailed   = errors.New("create period failed")
)

type PeriodRepository interface {
	ListPeriods() ([]models.Period, error)
	CreatePeriod(period *models.Period) error
}

type PeriodInput struct {
	StartDate calendar.Date
	EndDate   *calendar.Date
	Flow      string
}

type PeriodService struct {
	periods PeriodRepository
	newID   func() string
	now     func() time.Time
}

func NewPeriodService(periods PeriodRepository) *PeriodService {
	return &PeriodService{
		periods: periods,
		newID:   func() string { return ulid.Make().String() },
		now:     time.Now,
	}
}

func (service *PeriodService) ListPeriods() ([]models.Period, error) {
	periods, err := service.periods.ListPeriods()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeriodLoadFailed, err)
	}
	return periods, nil
}

// LogPeriod validates the form input and appends a new period.
func (service *PeriodService) LogPeriod(input PeriodInput) (models.Period, error) {
	normalized, err := NormalizePeriodInput(input)
	if err != nil {
		return models.Period{}, err
	}
	return service.create(normalized)
}

// AddPeriodDay records day as a period day. When day already sits inside a
// logged period window the existing period is returned unchanged.
func (service *PeriodService) AddPeriodDay(day calendar.Date, flow string) (models.Period, bool, error) {
	normalized, err := NormalizePeriodInput(PeriodInput{StartDate: day, Flow: flow})
	if err != nil {
		return models.Period{}, false, err
	}

	periods, err := service.ListPeriods()
	if err != nil {
		return models.Period{}, false, err
	}
	if existing, found := FindPeriodContaining(day, periods); found {
		return existing, false, nil
	}

	created, err := service.create(normalized)
	if err != nil {
		return models.Period{}, false, err
	}
	return created, true, nil
}

func (service *PeriodService) create(input PeriodInput) (models.Period, error) {
	period := models.Period{
		ID:        service.newID(),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Flow:      input.Flow,
		CreatedAt: service.now().UTC(),
	}
	if err := service.periods.CreatePeriod(&period); err != nil {
		return models.Period{}, fmt.Errorf("%w: %v", ErrPeriodCreateFailed, err)
	}
	return period, nil
}

func NormalizePeriodInput(input PeriodInput) (PeriodInput, error) {
	if input.StartDate.IsZero() {
		return input, ErrPeriodStartRequired
	}

	input.Flow = strings.ToLower(strings.TrimSpace(input.Flow))
	if !IsValidFlow(input.Flow) {
		return input, ErrInvalidFlow
	}

	if input.EndDate != nil && input.EndDate.IsZero() {
		input.EndDate = nil
	}
	if input.EndDate != nil {
		if input.EndDate.Before(input.StartDate) {
			return input, ErrPeriodEndBeforeStart
		}
		if input.EndDate.DaysSince(input.StartDate) > MaxCycleLength {
			return input, ErrPeriodTooLong
		}
		end := *input.EndDate
		input.EndDate = &end
	}
	return input, nil
}

func IsValidFlow(flow string) bool {
	return lo.Contains(models.Flows(), flow)
}
