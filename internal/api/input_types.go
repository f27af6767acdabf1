package api

type periodPayload struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Flow      string `json:"flow" validate:"required"`
}

type periodDayPayload struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Flow string `json:"flow" validate:"required"`
}

type symptomsPayload struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
}

type moodPayload struct {
	Mood string `json:"mood" validate:"required"`
}

// settingsPayload is a partial update: nil fields keep their stored value.
// ClearAge removes the stored age; a null age keeps it.
type settingsPayload struct {
	Age             *int  `json:"age" validate:"omitempty,min=1,max=120"`
	ClearAge        bool  `json:"clear_age"`
	CycleLength     *int  `json:"cycle_length" validate:"omitempty,min=1,max=90"`
	PeriodReminders *bool `json:"period_reminders"`
	OvulationAlerts *bool `json:"ovulation_alerts"`
	SymptomPrompts  *bool `json:"symptom_prompts"`
}
