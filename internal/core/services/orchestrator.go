package services

import (
	"context"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
	"github.com/ewilliams-labs/moodmix/internal/logging"
	"github.com/ewilliams-labs/moodmix/internal/metrics"
)

// Options tunes an Orchestrator. Zero values select defaults.
type Options struct {
	PoolSize int
	Seeds    domain.SeedTable
	Shuffler Shuffler
}

// Orchestrator turns an uploaded photo and language into a mood, display
// cards and a non-empty list of embeddable track IDs.
type Orchestrator struct {
	classifier *Classifier
	builder    *SeedBuilder
	widgets    *WidgetResolver
	poolSize   int
}

// NewOrchestrator constructs an Orchestrator. estimator may be nil.
func NewOrchestrator(catalog ports.Catalog, estimator ports.EmotionEstimator, opts Options) *Orchestrator {
	if opts.PoolSize <= 0 {
		opts.PoolSize = DefaultPoolSize
	}
	if opts.Seeds == nil {
		opts.Seeds = domain.DefaultSeeds()
	}
	if opts.Shuffler == nil {
		opts.Shuffler = NewShuffler(0)
	}
	return &Orchestrator{
		classifier: NewClassifier(estimator),
		builder:    NewSeedBuilder(catalog, opts.Seeds, opts.Shuffler),
		widgets:    NewWidgetResolver(catalog, opts.Shuffler),
		poolSize:   opts.PoolSize,
	}
}

// Analyze runs the full pipeline. It always returns a result; catalog failures
// degrade to fallback widgets and, if the seed pool could not be built, an
// empty card list plus a warning.
func (o *Orchestrator) Analyze(ctx context.Context, image []byte, language string) domain.Analysis {
	lang := domain.ParseLanguage(language)
	market := lang.Market()
	log := logging.Ctx(ctx).With().Str("language", lang.String()).Str("market", market.String()).Logger()
	ctx = log.WithContext(ctx)

	cls := o.classifier.ClassifyBytes(ctx, image)
	result := domain.Analysis{
		Mood:     cls.Mood,
		Language: lang,
		Market:   market,
		Source:   cls.Source,
		Color:    cls.Color,
	}

	pool, err := o.builder.Build(ctx, lang, cls.Mood, market, o.poolSize)
	if err != nil {
		log.Warn().Err(err).Str("mood", cls.Mood.String()).Msg("seed pool failed, answering degraded")
		metrics.AnalyzeDegraded.Inc()
		result.Warning = err.Error()
		result.Tracks = []domain.Card{}
		result.Embeds, result.WidgetSource = o.widgets.Resolve(ctx, market, WidgetsMax)
	} else {
		result.Tracks = ShapeCards(pool, CardsMax)
		if ids := WidgetIDs(pool, WidgetsMax); len(ids) > 0 {
			result.Embeds, result.WidgetSource = ids, domain.WidgetsFromPool
		} else {
			result.Embeds, result.WidgetSource = o.widgets.Resolve(ctx, market, WidgetsMax)
		}
	}

	metrics.AnalyzeRequests.WithLabelValues(string(result.Mood), string(result.Source)).Inc()
	metrics.WidgetSource.WithLabelValues(string(result.WidgetSource)).Inc()
	log.Info().
		Str("mood", result.Mood.String()).
		Str("source", string(result.Source)).
		Int("cards", len(result.Tracks)).
		Int("embeds", len(result.Embeds)).
		Str("widgets", string(result.WidgetSource)).
		Msg("analysis complete")
	return result
}
