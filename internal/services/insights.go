package services

import (
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/models"
)

const menstrualPhaseLastDay = 5

type InsightPhase string

const (
	InsightMenstrual  InsightPhase = "menstrual"
	InsightFertile    InsightPhase = "fertile"
	InsightPMS        InsightPhase = "pms"
	InsightFollicular InsightPhase = "follicular"
)

type Insight struct {
	Phase   InsightPhase `json:"phase"`
	Message string       `json:"message"`
}

var insightMessages = map[InsightPhase]string{
	InsightMenstrual:  "You're in your menstrual phase. Rest well and stay hydrated.",
	InsightFertile:    "You're in your fertile window. This is the best time for conception.",
	InsightPMS:        "You might experience PMS symptoms soon. Consider tracking your mood and symptoms.",
	InsightFollicular: "Your body is in the follicular phase. Great time for exercise and new activities!",
}

func (phase InsightPhase) Message() string {
	return insightMessages[phase]
}

// TodayInsight maps the cycle day to a phase message. Branches are checked
// menstrual, fertile, PMS, then follicular; PMS uses the average cycle length.
func TodayInsight(day calendar.Date, periods []models.Period, config CycleConfig) Insight {
	cycleDay := CycleDayOf(day, periods)
	averageLength := AverageCycleLength(periods, config)

	phase := InsightFollicular
	switch {
	case cycleDay >= 1 && cycleDay <= menstrualPhaseLastDay:
		phase = InsightMenstrual
	case cycleDay >= fertileWindowFirstDay && cycleDay <= fertileWindowLastDay:
		phase = InsightFertile
	case cycleDay > averageLength-pmsWindowDays:
		phase = InsightPMS
	}
	return Insight{Phase: phase, Message: phase.Message()}
}
