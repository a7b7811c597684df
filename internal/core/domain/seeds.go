package domain

// SeedTable maps a language and mood to an ordered list of artist names.
// It is read-only after construction.
type SeedTable map[Language]map[Mood][]string

// Artists returns a copy of the roster for (lang, mood), or nil.
func (t SeedTable) Artists(lang Language, mood Mood) []string {
	names := t[lang][mood]
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// DefaultSeeds returns the curated roster of popular artists per language and mood.
func DefaultSeeds() SeedTable {
	return SeedTable{
		LanguageTurkish: {
			MoodHappy:       {"Lvbel C5", "Semicenk", "Hadise", "Tarkan", "Mabel Matiz"},
			MoodEnergetic:   {"Ezhel", "UZI", "Ceza", "Reynmen", "Edis"},
			MoodRomantic:    {"Yalın", "Melike Şahin", "Mabel Matiz"},
			MoodSad:         {"Sezen Aksu", "Duman", "Teoman", "Manuş Baba"},
			MoodMelancholic: {"Duman", "Mor ve Ötesi", "Teoman"},
			MoodCalm:        {"Kalben", "Cem Adrian"},
			MoodPeaceful:    {"Cem Adrian", "Yüzyüzeyken Konuşuruz"},
			MoodAngry:       {"Sagopa Kajmer", "Ceza", "UZI"},
		},
		LanguageKorean: {
			MoodHappy:       {"NewJeans", "IVE", "SEVENTEEN", "TWICE", "LE SSERAFIM"},
			MoodEnergetic:   {"BTS", "Stray Kids", "ATEEZ", "BLACKPINK"},
			MoodRomantic:    {"IU", "BOL4"},
			MoodSad:         {"AKMU", "Baek Yerin", "Epik High"},
			MoodMelancholic: {"Heize", "10CM"},
			MoodCalm:        {"IU", "Paul Kim"},
			MoodPeaceful:    {"AKMU", "Jannabi"},
			MoodAngry:       {"Stray Kids", "ATEEZ"},
		},
		LanguageJapanese: {
			MoodHappy:       {"YOASOBI", "Official髭男dism", "TWICE"},
			MoodEnergetic:   {"Mrs. GREEN APPLE", "UVERworld"},
			MoodRomantic:    {"Aimer", "back number"},
			MoodSad:         {"Aimer", "YUI"},
			MoodMelancholic: {"Kenshi Yonezu", "RADWIMPS"},
			MoodCalm:        {"Kenshi Yonezu", "Aimer"},
			MoodPeaceful:    {"RADWIMPS", "Aimer"},
			MoodAngry:       {"ONE OK ROCK"},
		},
		LanguageSpanish: {
			MoodHappy:       {"Bad Bunny", "Karol G", "Shakira", "Rauw Alejandro"},
			MoodEnergetic:   {"J Balvin", "Peso Pluma", "Bad Bunny"},
			MoodRomantic:    {"Morat", "Camilo"},
			MoodSad:         {"Pablo Alborán", "Aitana"},
			MoodMelancholic: {"Morat", "Reik"},
			MoodCalm:        {"Vicente García", "Jesse & Joy"},
			MoodPeaceful:    {"Mon Laferte", "C. Tangana"},
			MoodAngry:       {"Quevedo", "Eladio Carrión"},
		},
		LanguageArabic: {
			MoodHappy:       {"Amr Diab", "Nancy Ajram", "Saad Lamjarred"},
			MoodEnergetic:   {"Wegz", "Marwan Moussa"},
			MoodRomantic:    {"Elissa", "Ragheb Alama"},
			MoodSad:         {"Fairuz", "Kadim Al Sahir"},
			MoodMelancholic: {"Majida El Roumi", "Amr Diab"},
			MoodCalm:        {"Hani Shaker", "Sherine"},
			MoodPeaceful:    {"Fairuz", "Majida El Roumi"},
			MoodAngry:       {"Wegz", "Balti"},
		},
		LanguageEnglish: {
			MoodHappy:       {"Dua Lipa", "Harry Styles", "Justin Bieber", "Olivia Rodrigo"},
			MoodEnergetic:   {"The Weeknd", "Travis Scott", "David Guetta"},
			MoodRomantic:    {"Taylor Swift", "Ed Sheeran"},
			MoodSad:         {"Billie Eilish", "Adele"},
			MoodMelancholic: {"Lana Del Rey", "The Neighbourhood"},
			MoodCalm:        {"Khalid", "Snoh Aalegra"},
			MoodPeaceful:    {"Ludovico Einaudi", "Sufjan Stevens"},
			MoodAngry:       {"Imagine Dragons", "Eminem"},
		},
	}
}
