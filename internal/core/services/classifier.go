package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"

	// Formats accepted for uploads.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/cenkalti/dominantcolor"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
	"github.com/ewilliams-labs/moodmix/internal/logging"
	"github.com/ewilliams-labs/moodmix/internal/metrics"
)

// emotionMoods maps estimator labels to moods. Labels outside the table fall
// through to the colour heuristic.
var emotionMoods = map[string]domain.Mood{
	"angry":    domain.MoodAngry,
	"disgust":  domain.MoodMelancholic,
	"fear":     domain.MoodMelancholic,
	"happy":    domain.MoodHappy,
	"sad":      domain.MoodSad,
	"surprise": domain.MoodEnergetic,
	"neutral":  domain.MoodCalm,
}

// Classifier resolves a photo to a mood. It never fails.
type Classifier struct {
	estimator ports.EmotionEstimator
}

// NewClassifier builds a Classifier. A nil estimator disables the facial path.
func NewClassifier(estimator ports.EmotionEstimator) *Classifier {
	return &Classifier{estimator: estimator}
}

// ClassifyBytes decodes an uploaded photo and classifies it. Undecodable
// input yields the default mood.
func (c *Classifier) ClassifyBytes(ctx context.Context, data []byte) domain.Classification {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("bytes", len(data)).Msg("image decode failed, using default mood")
		return domain.Classification{Mood: domain.DefaultMood, Source: domain.SourceDefault}
	}
	logging.Ctx(ctx).Debug().Str("format", format).Stringer("bounds", img.Bounds()).Msg("decoded image")
	return c.Classify(ctx, img)
}

// Classify tries the emotion estimator, then the colour heuristic, then the default mood.
func (c *Classifier) Classify(ctx context.Context, img image.Image) domain.Classification {
	flat, err := flattenOpaque(img)
	if err != nil {
		return domain.Classification{Mood: domain.DefaultMood, Source: domain.SourceDefault}
	}
	small, err := downscale(flat)
	if err != nil {
		return domain.Classification{Mood: domain.DefaultMood, Source: domain.SourceDefault}
	}
	colour := accentColour(small)

	if mood, ok := c.estimate(ctx, flat); ok {
		return domain.Classification{Mood: mood, Source: domain.SourceEstimator, Color: colour}
	}

	st, err := measureColour(small)
	if err != nil {
		return domain.Classification{Mood: domain.DefaultMood, Source: domain.SourceDefault}
	}
	return domain.Classification{Mood: moodFromColour(st), Source: domain.SourceHeuristic, Color: colour}
}

func (c *Classifier) estimate(ctx context.Context, img image.Image) (domain.Mood, bool) {
	if c.estimator == nil {
		return "", false
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		metrics.EstimatorFailures.Inc()
		logging.Ctx(ctx).Debug().Err(err).Msg("jpeg encode for estimator failed")
		return "", false
	}

	label, err := c.estimator.DominantEmotion(ctx, buf.Bytes())
	if err != nil {
		metrics.EstimatorFailures.Inc()
		logging.Ctx(ctx).Debug().Err(err).Msg("emotion estimator failed, using colour heuristic")
		return "", false
	}

	mood, ok := emotionMoods[label]
	if !ok {
		metrics.EstimatorFailures.Inc()
		logging.Ctx(ctx).Debug().Str("label", label).Msg("unmapped emotion label")
		return "", false
	}
	return mood, true
}

func accentColour(img image.Image) string {
	c := dominantcolor.Find(img)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
