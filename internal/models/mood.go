package models

type Mood struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

func DefaultMoods() []Mood {
	return []Mood{
		{Name: "Happy", Emoji: "😊"},
		{Name: "Sad", Emoji: "😢"},
		{Name: "Anxious", Emoji: "😰"},
		{Name: "Irritable", Emoji: "😠"},
		{Name: "Calm", Emoji: "😌"},
		{Name: "Energetic", Emoji: "⚡"},
		{Name: "Stressed", Emoji: "😵"},
	}
}
