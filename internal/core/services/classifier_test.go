package services

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/jpeg"
	"image/png"
	"regexp"
	"testing"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
)

var hexColour = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestClassifier_EstimatorLabels(t *testing.T) {
	red := solidImage(color.RGBA{220, 20, 20, 255})
	tests := []struct {
		label      string
		err        error
		wantMood   domain.Mood
		wantSource domain.ClassifierSource
	}{
		{label: "angry", wantMood: domain.MoodAngry, wantSource: domain.SourceEstimator},
		{label: "disgust", wantMood: domain.MoodMelancholic, wantSource: domain.SourceEstimator},
		{label: "fear", wantMood: domain.MoodMelancholic, wantSource: domain.SourceEstimator},
		{label: "happy", wantMood: domain.MoodHappy, wantSource: domain.SourceEstimator},
		{label: "sad", wantMood: domain.MoodSad, wantSource: domain.SourceEstimator},
		{label: "surprise", wantMood: domain.MoodEnergetic, wantSource: domain.SourceEstimator},
		{label: "neutral", wantMood: domain.MoodCalm, wantSource: domain.SourceEstimator},
		// unmapped labels and failures fall through to the colour heuristic (red -> angry)
		{label: "contempt", wantMood: domain.MoodAngry, wantSource: domain.SourceHeuristic},
		{err: errors.New("model not loaded"), wantMood: domain.MoodAngry, wantSource: domain.SourceHeuristic},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			est := &mockEstimator{label: tt.label, err: tt.err}
			got := NewClassifier(est).Classify(context.Background(), red)

			if got.Mood != tt.wantMood || got.Source != tt.wantSource {
				t.Fatalf("Classify = %+v, want mood %q source %q", got, tt.wantMood, tt.wantSource)
			}
			if est.calls != 1 {
				t.Fatalf("estimator calls = %d, want 1", est.calls)
			}
			if !hexColour.MatchString(got.Color) {
				t.Fatalf("colour %q is not #rrggbb", got.Color)
			}
		})
	}
}

func TestClassifier_NoEstimatorUsesHeuristic(t *testing.T) {
	got := NewClassifier(nil).Classify(context.Background(), solidImage(color.RGBA{20, 60, 220, 255}))
	if got.Mood != domain.MoodEnergetic || got.Source != domain.SourceHeuristic {
		t.Fatalf("Classify = %+v", got)
	}
}

func TestClassifier_IdempotentWithFailingEstimator(t *testing.T) {
	c := NewClassifier(&mockEstimator{err: errors.New("down")})
	img := solidImage(color.RGBA{160, 40, 200, 255})

	first := c.Classify(context.Background(), img)
	second := c.Classify(context.Background(), img)
	if first != second {
		t.Fatalf("classifications differ: %+v vs %+v", first, second)
	}
}

func TestClassifyBytes(t *testing.T) {
	c := NewClassifier(nil)

	got := c.ClassifyBytes(context.Background(), pngBytes(t, color.RGBA{30, 200, 40, 255}))
	if got.Mood != domain.MoodPeaceful || got.Source != domain.SourceHeuristic {
		t.Fatalf("png classify = %+v", got)
	}

	for name, data := range map[string][]byte{
		"corrupt": []byte("definitely not an image"),
		"empty":   nil,
	} {
		got := c.ClassifyBytes(context.Background(), data)
		if got.Mood != domain.DefaultMood || got.Source != domain.SourceDefault || got.Color != "" {
			t.Errorf("%s: got %+v, want default mood", name, got)
		}
	}
}

func TestClassifyBytes_TransparentPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, nrgbaImage(color.NRGBA{255, 255, 255, 0})); err != nil {
		t.Fatalf("png encode: %v", err)
	}

	got := NewClassifier(nil).ClassifyBytes(context.Background(), buf.Bytes())
	if got.Mood != domain.MoodCalm || got.Source != domain.SourceHeuristic {
		t.Fatalf("transparent white = %+v, want calm from heuristic", got)
	}

	est := &mockEstimator{label: "happy"}
	NewClassifier(est).ClassifyBytes(context.Background(), buf.Bytes())
	img, err := jpeg.Decode(bytes.NewReader(est.payload))
	if err != nil {
		t.Fatalf("estimator payload is not a jpeg: %v", err)
	}
	if r, g, b, _ := img.At(32, 32).RGBA(); r>>8 < 240 || g>>8 < 240 || b>>8 < 240 {
		t.Fatalf("estimator saw (%d,%d,%d), want near white", r>>8, g>>8, b>>8)
	}
}
