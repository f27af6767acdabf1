package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

var (
	ErrDayRequired          = errors.New("day is required")
	ErrNoSymptomsSelected   = errors.New("at least one symptom is required")
	ErrUnknownSymptom       = errors.New("unknown symptom")
	ErrMoodRequired         = errors.New("mood is required")
	ErrUnknownMood          = errors.New("unknown mood")
	ErrDayEntryLoadFailed   = errors.New("load day entry failed")
	ErrDayEntrySaveFailed   = errors.New("save day entry failed")
	ErrDayEntriesLoadFailed = errors.New("load day entries failed")
)

type DayEntryRepository interface {
	FindDayEntry(day calendar.Date) (models.DayEntry, bool, error)
	SaveDayEntry(entry *models.DayEntry) error
	ListDayEntries() ([]models.DayEntry, error)
}

type DayLogService struct {
	entries DayEntryRepository
}

func NewDayLogService(entries DayEntryRepository) *DayLogService {
	return &DayLogService{entries: entries}
}

// LogSymptoms replaces the symptoms of day and keeps its mood.
func (service *DayLogService) LogSymptoms(day calendar.Date, symptoms []string) (models.DayEntry, error) {
	if day.IsZero() {
		return models.DayEntry{}, ErrDayRequired
	}
	normalized, err := NormalizeSymptoms(symptoms)
	if err != nil {
		return models.DayEntry{}, err
	}

	entry, err := service.loadOrNew(day)
	if err != nil {
		return models.DayEntry{}, err
	}
	entry.Symptoms = normalized
	return service.save(entry)
}

// LogMood replaces the mood of day and keeps its symptoms.
func (service *DayLogService) LogMood(day calendar.Date, mood string) (models.DayEntry, error) {
	if day.IsZero() {
		return models.DayEntry{}, ErrDayRequired
	}
	normalized, err := NormalizeMood(mood)
	if err != nil {
		return models.DayEntry{}, err
	}

	entry, err := service.loadOrNew(day)
	if err != nil {
		return models.DayEntry{}, err
	}
	entry.Mood = normalized
	return service.save(entry)
}

func (service *DayLogService) Entry(day calendar.Date) (models.DayEntry, error) {
	entry, err := service.loadOrNew(day)
	if err != nil {
		return models.DayEntry{}, err
	}
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}
	return entry, nil
}

func (service *DayLogService) ListEntries() ([]models.DayEntry, error) {
	entries, err := service.entries.ListDayEntries()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDayEntriesLoadFailed, err)
	}
	return entries, nil
}

func (service *DayLogService) SymptomLog() (SymptomLog, error) {
	entries, err := service.ListEntries()
	if err != nil {
		return nil, err
	}
	return BuildSymptomLog(entries), nil
}

func (service *DayLogService) MoodLog() (MoodLog, error) {
	entries, err := service.ListEntries()
	if err != nil {
		return nil, err
	}
	return BuildMoodLog(entries), nil
}

func (service *DayLogService) loadOrNew(day calendar.Date) (models.DayEntry, error) {
	entry, found, err := service.entries.FindDayEntry(day)
	if err != nil {
		return models.DayEntry{}, fmt.Errorf("%w: %v", ErrDayEntryLoadFailed, err)
	}
	if !found {
		return models.DayEntry{Day: day}, nil
	}
	return entry, nil
}

func (service *DayLogService) save(entry models.DayEntry) (models.DayEntry, error) {
	if err := service.entries.SaveDayEntry(&entry); err != nil {
		return models.DayEntry{}, fmt.Errorf("%w: %v", ErrDayEntrySaveFailed, err)
	}
	return entry, nil
}

func BuildSymptomLog(entries []models.DayEntry) SymptomLog {
	log := make(SymptomLog, len(entries))
	for _, entry := range entries {
		if len(entry.Symptoms) > 0 {
			log[entry.Day] = entry.Symptoms
		}
	}
	return log
}

func BuildMoodLog(entries []models.DayEntry) MoodLog {
	log := make(MoodLog, len(entries))
	for _, entry := range entries {
		if entry.Mood != "" {
			log[entry.Day] = entry.Mood
		}
	}
	return log
}

// NormalizeSymptoms maps names onto the catalog spelling, drops duplicates
// and keeps the caller's order.
func NormalizeSymptoms(symptoms []string) ([]string, error) {
	catalog := make(map[string]string)
	for _, symptom := range models.DefaultSymptoms() {
		catalog[strings.ToLower(symptom.Name)] = symptom.Name
	}

	normalized := make([]string, 0, len(symptoms))
	for _, raw := range symptoms {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" {
			continue
		}
		name, ok := catalog[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSymptom, strings.TrimSpace(raw))
		}
		normalized = append(normalized, name)
	}

	normalized = lo.Uniq(normalized)
	if len(normalized) == 0 {
		return nil, ErrNoSymptomsSelected
	}
	return normalized, nil
}

func NormalizeMood(mood string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(mood))
	if key == "" {
		return "", ErrMoodRequired
	}
	match, ok := lo.Find(models.DefaultMoods(), func(candidate models.Mood) bool {
		return strings.ToLower(candidate.Name) == key
	})
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownMood, strings.TrimSpace(mood))
	}
	return match.Name, nil
}
