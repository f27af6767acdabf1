package models

const (
	SymptomCategoryPhysical  = "physical"
	SymptomCategoryEnergy    = "energy"
	SymptomCategoryEmotional = "emotional"
	SymptomCategorySkin      = "skin"
)

type Symptom struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

func DefaultSymptoms() []Symptom {
	return []Symptom{
		{Name: "Cramps", Icon: "🩸", Category: SymptomCategoryPhysical},
		{Name: "Headache", Icon: "🤕", Category: SymptomCategoryPhysical},
		{Name: "Bloating", Icon: "🎈", Category: SymptomCategoryPhysical},
		{Name: "Fatigue", Icon: "😴", Category: SymptomCategoryEnergy},
		{Name: "Mood swings", Icon: "😢", Category: SymptomCategoryEmotional},
		{Name: "Acne", Icon: "🔴", Category: SymptomCategorySkin},
		{Name: "Back pain", Icon: "🦴", Category: SymptomCategoryPhysical},
		{Name: "Nausea", Icon: "🤢", Category: SymptomCategoryPhysical},
	}
}
