package domain

import (
	"reflect"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"turkish", LanguageTurkish},
		{"  Korean ", LanguageKorean},
		{"JAPANESE", LanguageJapanese},
		{"", LanguageEnglish},
		{"klingon", LanguageEnglish},
	}
	for _, tt := range tests {
		if got := ParseLanguage(tt.in); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLanguage_Market(t *testing.T) {
	want := map[Language]Market{
		LanguageEnglish:  "US",
		LanguageTurkish:  "TR",
		LanguageKorean:   "KR",
		LanguageJapanese: "JP",
		LanguageSpanish:  "ES",
		LanguageArabic:   "AE",
		Language("x"):    "US",
	}
	for lang, m := range want {
		if got := lang.Market(); got != m {
			t.Errorf("%q.Market() = %q, want %q", lang, got, m)
		}
	}
}

func TestDefaultSeeds_CoverEveryLanguageAndMood(t *testing.T) {
	seeds := DefaultSeeds()
	for _, lang := range Languages {
		for _, mood := range Moods {
			if len(seeds.Artists(lang, mood)) == 0 {
				t.Errorf("no seed artists for (%s, %s)", lang, mood)
			}
		}
	}
}

func TestSeedTable_ArtistsReturnsCopy(t *testing.T) {
	seeds := DefaultSeeds()
	first := seeds.Artists(LanguageEnglish, MoodHappy)
	first[0] = "mutated"

	again := seeds.Artists(LanguageEnglish, MoodHappy)
	if again[0] == "mutated" {
		t.Fatal("Artists must not expose the backing slice")
	}
	if got := seeds.Artists(Language("x"), MoodHappy); got != nil {
		t.Fatalf("unknown language should yield nil, got %v", got)
	}
}

func TestMood_Valid(t *testing.T) {
	if !MoodMelancholic.Valid() {
		t.Error("melancholic should be valid")
	}
	if Mood("grumpy").Valid() {
		t.Error("grumpy should not be valid")
	}
	if DefaultMood != MoodHappy {
		t.Errorf("DefaultMood = %q", DefaultMood)
	}
}

func TestNewCard(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  Card
	}{
		{
			name: "prefers second image and joins artists",
			track: Track{
				ID: "t1", Name: "Song", Artists: []string{"A", "B"},
				Images: []string{"big", "mid", "small"}, PreviewURL: "p",
			},
			want: Card{ID: "t1", Name: "Song", Artists: "A, B", ImageURL: "mid", PreviewURL: "p"},
		},
		{
			name:  "single image",
			track: Track{ID: "t2", Name: "Solo", Artists: []string{"A"}, Images: []string{"only"}},
			want:  Card{ID: "t2", Name: "Solo", Artists: "A", ImageURL: "only"},
		},
		{
			name:  "no images or preview",
			track: Track{ID: "t3", Name: "Bare"},
			want:  Card{ID: "t3", Name: "Bare"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewCard(tc.track); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("NewCard() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTrack_Playable(t *testing.T) {
	if !(Track{ID: "a"}).Playable() {
		t.Error("track with id should be playable")
	}
	if (Track{ID: "a", IsLocal: true}).Playable() {
		t.Error("local track should not be playable")
	}
	if (Track{}).Playable() {
		t.Error("track without id should not be playable")
	}
}
