package services

import (
	"errors"
	"sort"

	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

type memoryStore struct {
	periods  []models.Period
	entries  map[calendar.Date]models.DayEntry
	settings *models.Settings
	err      error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[calendar.Date]models.DayEntry)}
}

func (store *memoryStore) ListPeriods() ([]models.Period, error) {
	if store.err != nil {
		return nil, store.err
	}
	result := make([]models.Period, len(store.periods))
	copy(result, store.periods)
	return result, nil
}

func (store *memoryStore) CreatePeriod(period *models.Period) error {
	if store.err != nil {
		return store.err
	}
	store.periods = append(store.periods, *period)
	return nil
}

func (store *memoryStore) FindDayEntry(day calendar.Date) (models.DayEntry, bool, error) {
	if store.err != nil {
		return models.DayEntry{}, false, store.err
	}
	entry, ok := store.entries[day]
	return entry, ok, nil
}

func (store *memoryStore) SaveDayEntry(entry *models.DayEntry) error {
	if store.err != nil {
		return store.err
	}
	store.entries[entry.Day] = *entry
	return nil
}

func (store *memoryStore) ListDayEntries() ([]models.DayEntry, error) {
	if store.err != nil {
		return nil, store.err
	}
	result := make([]models.DayEntry, 0, len(store.entries))
	for _, entry := range store.entries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day.Before(result[j].Day) })
	return result, nil
}

func (store *memoryStore) ListEntries() ([]models.DayEntry, error) {
	return store.ListDayEntries()
}

func (store *memoryStore) LoadSettings() (models.Settings, bool, error) {
	if store.err != nil {
		return models.Settings{}, false, store.err
	}
	if store.settings == nil {
		return models.Settings{}, false, nil
	}
	return *store.settings, true, nil
}

func (store *memoryStore) SaveSettings(settings *models.Settings) error {
	if store.err != nil {
		return store.err
	}
	saved := *settings
	store.settings = &saved
	return nil
}

func (store *memoryStore) ClearAllData() error {
	if store.err != nil {
		return store.err
	}
	store.periods = nil
	store.entries = make(map[calendar.Date]models.DayEntry)
	store.settings = nil
	return nil
}

// Load makes memoryStore usable where a settings reader is expected.
func (store *memoryStore) Load() (models.Settings, error) {
	return NewSettingsService(store).Load()
}

var errStoreUnavailable = errors.New("store unavailable")
