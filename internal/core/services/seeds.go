package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
	"github.com/ewilliams-labs/moodmix/internal/logging"
)

// DefaultPoolSize is the target number of seed tracks per request.
const DefaultPoolSize = 80

// SeedBuilder collects top tracks from the curated artists for a language and mood.
type SeedBuilder struct {
	catalog  ports.Catalog
	seeds    domain.SeedTable
	shuffler Shuffler
}

func NewSeedBuilder(catalog ports.Catalog, seeds domain.SeedTable, shuffler Shuffler) *SeedBuilder {
	return &SeedBuilder{catalog: catalog, seeds: seeds, shuffler: shuffler}
}

// Build visits the roster in random order and gathers playable top tracks until
// target is reached. A failing artist is skipped. The result is deduplicated by
// track ID and may be empty. Build only fails when ctx ends.
func (b *SeedBuilder) Build(ctx context.Context, lang domain.Language, mood domain.Mood, market domain.Market, target int) ([]domain.Track, error) {
	if target <= 0 {
		target = DefaultPoolSize
	}
	log := logging.Ctx(ctx)
	names := b.seeds.Artists(lang, mood)
	b.shuffler.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	var pool []domain.Track
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("seed pool for %s/%s: %w", lang, mood, err)
		}

		artistID, err := b.catalog.ResolveArtistID(ctx, name, market)
		if errors.Is(err, ports.ErrNoArtistMatch) {
			log.Debug().Str("artist", name).Msg("seed artist not in catalog")
			continue
		}
		if err != nil {
			log.Warn().Err(err).Str("artist", name).Msg("skipping seed artist")
			continue
		}
		tracks, err := b.catalog.ArtistTopTracks(ctx, artistID, market)
		if err != nil {
			log.Warn().Err(err).Str("artist", name).Msg("skipping seed artist")
			continue
		}

		for _, t := range tracks {
			if !t.Playable() {
				continue
			}
			pool = append(pool, t)
			if len(pool) >= target {
				break
			}
		}
		if len(pool) >= target {
			break
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("seed pool for %s/%s: %w", lang, mood, err)
	}

	unique := dedupeTracks(pool)
	log.Debug().
		Str("language", lang.String()).
		Str("mood", mood.String()).
		Int("artists", len(names)).
		Int("tracks", len(unique)).
		Msg("built seed pool")
	return unique, nil
}

func dedupeTracks(tracks []domain.Track) []domain.Track {
	seen := make(map[string]struct{}, len(tracks))
	out := make([]domain.Track, 0, len(tracks))
	for _, t := range tracks {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
