package ports

import "context"

// EmotionEstimator returns the dominant facial-emotion label for an encoded photo.
type EmotionEstimator interface {
	DominantEmotion(ctx context.Context, jpeg []byte) (string, error)
}
