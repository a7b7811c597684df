package domain

// Mood is the emotional label assigned to a photo.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodEnergetic   Mood = "energetic"
	MoodRomantic    Mood = "romantic"
	MoodSad         Mood = "sad"
	MoodMelancholic Mood = "melancholic"
	MoodCalm        Mood = "calm"
	MoodPeaceful    Mood = "peaceful"
	MoodAngry       Mood = "angry"
)

// DefaultMood is used when no classifier path produces a label.
const DefaultMood = MoodHappy

// Moods lists every mood in a stable order.
var Moods = []Mood{
	MoodHappy,
	MoodEnergetic,
	MoodRomantic,
	MoodSad,
	MoodMelancholic,
	MoodCalm,
	MoodPeaceful,
	MoodAngry,
}

// Valid reports whether m belongs to the closed mood set.
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) String() string {
	return string(m)
}
