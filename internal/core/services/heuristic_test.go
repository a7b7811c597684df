package services

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
)

func TestHeuristicMood_SolidColours(t *testing.T) {
	tests := []struct {
		name   string
		colour color.RGBA
		want   domain.Mood
	}{
		{"near black is sad", color.RGBA{10, 10, 10, 255}, domain.MoodSad},
		{"mid grey is calm", color.RGBA{128, 128, 128, 255}, domain.MoodCalm},
		{"yellow is happy", color.RGBA{255, 220, 0, 255}, domain.MoodHappy},
		{"red is angry", color.RGBA{220, 20, 20, 255}, domain.MoodAngry},
		{"blue is energetic", color.RGBA{20, 60, 220, 255}, domain.MoodEnergetic},
		{"purple is romantic", color.RGBA{160, 40, 200, 255}, domain.MoodRomantic},
		{"green is peaceful", color.RGBA{30, 200, 40, 255}, domain.MoodPeaceful},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HeuristicMood(solidImage(tt.colour))
			if err != nil {
				t.Fatalf("HeuristicMood: %v", err)
			}
			if got != tt.want {
				t.Fatalf("HeuristicMood(%v) = %q, want %q", tt.colour, got, tt.want)
			}
		})
	}
}

func TestHeuristicMood_TransparentPixelsKeepColour(t *testing.T) {
	wide := image.NewNRGBA64(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			wide.SetNRGBA64(x, y, color.NRGBA64{R: 0xffff, G: 0xffff, B: 0xffff, A: 0})
		}
	}

	tests := []struct {
		name string
		img  image.Image
		want domain.Mood
	}{
		{"transparent white", nrgbaImage(color.NRGBA{255, 255, 255, 0}), domain.MoodCalm},
		{"half transparent yellow", nrgbaImage(color.NRGBA{255, 220, 0, 100}), domain.MoodHappy},
		{"transparent white 16-bit", wide, domain.MoodCalm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HeuristicMood(tt.img)
			if err != nil {
				t.Fatalf("HeuristicMood: %v", err)
			}
			if got != tt.want {
				t.Fatalf("HeuristicMood = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlattenOpaque(t *testing.T) {
	sub := nrgbaImage(color.NRGBA{10, 200, 30, 0}).SubImage(image.Rect(8, 8, 24, 40))
	flat, err := flattenOpaque(sub)
	if err != nil {
		t.Fatalf("flattenOpaque: %v", err)
	}
	if got := flat.Bounds(); got != image.Rect(0, 0, 16, 32) {
		t.Fatalf("bounds = %v", got)
	}
	if got := flat.NRGBAAt(15, 31); got != (color.NRGBA{10, 200, 30, 255}) {
		t.Fatalf("pixel = %v, want opaque straight colour", got)
	}
}

func TestHeuristicMood_Deterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 300; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y), uint8((x + y) % 256), 255})
		}
	}
	first, err := HeuristicMood(img)
	if err != nil {
		t.Fatalf("HeuristicMood: %v", err)
	}
	for i := 0; i < 3; i++ {
		if again, _ := HeuristicMood(img); again != first {
			t.Fatalf("run %d = %q, want %q", i, again, first)
		}
	}
}

func TestHeuristicMood_EmptyImage(t *testing.T) {
	if _, err := HeuristicMood(nil); err == nil {
		t.Error("expected error for nil image")
	}
	if _, err := HeuristicMood(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		wantH   float64
	}{
		{"pure red", 1, 0, 0, 0},
		{"magenta-ish red wraps", 1, 0, 0.5, 330},
		{"red and green tie picks green", 1, 1, 0, 60},
		{"grey picks blue branch", 0.5, 0.5, 0.5, 240},
		{"green", 0, 1, 0, 120},
	}
	for _, tt := range tests {
		h, _, v := hsv(tt.r, tt.g, tt.b)
		if math.Abs(h-tt.wantH) > 1e-3 {
			t.Errorf("%s: hue = %v, want %v", tt.name, h, tt.wantH)
		}
		if v != math.Max(tt.r, math.Max(tt.g, tt.b)) {
			t.Errorf("%s: value = %v", tt.name, v)
		}
	}
}

func TestMoodFromColour_Thresholds(t *testing.T) {
	bright := func(h float64) colourStats { return colourStats{SatMedian: 0.5, ValMedian: 0.5, HueMean: h} }
	tests := []struct {
		name string
		st   colourStats
		want domain.Mood
	}{
		{"dark beats everything", colourStats{SatMedian: 0.9, ValMedian: 0.21, HueMean: 50}, domain.MoodSad},
		{"desaturated", colourStats{SatMedian: 0.17, ValMedian: 0.9, HueMean: 50}, domain.MoodCalm},
		{"hue 20 happy", bright(20), domain.MoodHappy},
		{"hue 79.9 happy", bright(79.9), domain.MoodHappy},
		{"hue 19.9 angry", bright(19.9), domain.MoodAngry},
		{"hue 330 angry", bright(330), domain.MoodAngry},
		{"hue 160 energetic", bright(160), domain.MoodEnergetic},
		{"hue 260 romantic", bright(260), domain.MoodRomantic},
		{"hue 80 peaceful", bright(80), domain.MoodPeaceful},
		{"hue 159 peaceful", bright(159), domain.MoodPeaceful},
	}
	for _, tt := range tests {
		if got := moodFromColour(tt.st); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMedianAndFloorMod(t *testing.T) {
	if got := median([]float64{3, 1, 2}); got != 2 {
		t.Errorf("odd median = %v", got)
	}
	if got := median([]float64{4, 1, 3, 2}); got != 2.5 {
		t.Errorf("even median = %v", got)
	}
	if got := floorMod(-30, 360); got != 330 {
		t.Errorf("floorMod(-30) = %v", got)
	}
	if got := floorMod(370, 360); got != 10 {
		t.Errorf("floorMod(370) = %v", got)
	}
}
