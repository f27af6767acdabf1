package services

import (
	"sort"

	"github.com/samber/lo"
	"github.com/terraincognita07/luna/internal/calendar"
)

// SymptomLog maps a day to the symptoms logged that day.
type SymptomLog map[calendar.Date][]string

// MoodLog maps a day to the single mood logged that day.
type MoodLog map[calendar.Date]string

type SymptomFrequency struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	TotalDays int    `json:"total_days"`
}

// SymptomFrequencies counts symptoms across all days, most frequent first.
// Equal counts keep the order in which symptoms were first seen walking the
// log chronologically.
func SymptomFrequencies(log SymptomLog) []SymptomFrequency {
	if len(log) == 0 {
		return []SymptomFrequency{}
	}

	days := lo.Keys(log)
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, day := range days {
		for _, symptom := range log[day] {
			if _, seen := counts[symptom]; !seen {
				order = append(order, symptom)
			}
			counts[symptom]++
		}
	}

	result := lo.Map(order, func(name string, _ int) SymptomFrequency {
		return SymptomFrequency{Name: name, Count: counts[name], TotalDays: len(log)}
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

func MostCommonSymptom(log SymptomLog) (string, bool) {
	frequencies := SymptomFrequencies(log)
	if len(frequencies) == 0 {
		return "", false
	}
	return frequencies[0].Name, true
}
