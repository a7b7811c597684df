package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
	"github.com/ewilliams-labs/moodmix/internal/logging"
)

const (
	// WidgetsMax is the number of embeddable track IDs returned per request.
	WidgetsMax = 8

	browseCategoryLimit = 50
	browsePlaylistLimit = 20
	playlistTrackCap    = 100
)

// GlobalEditorialPlaylists are market-independent editorial playlists.
var GlobalEditorialPlaylists = []string{
	"37i9dQZF1DXcBWIGoYBM5M", // Today's Top Hits
	"37i9dQZEVXbLiRSasKsNU9", // Viral 50 - Global
	"37i9dQZEVXbMDoHDwVN2tF", // Top 50 - Global
}

// HardcodedTrackIDs are known-good tracks used when every catalog tier fails.
var HardcodedTrackIDs = []string{
	"0VjIjW4GlUZAMYd2vXMi3b", // Blinding Lights
	"7qiZfU4dY1lWllzX7mPBI3", // Shape of You
	"3KkXRkHbMCARz0aVfEt68P", // Sunflower
	"6habFhsOp2NvshLv26DqMb", // Levitating
	"4iJyoBOLtHqaGxP12qzhQI", // Save Your Tears
	"62aP9fBQKYKxi7PDXwcUAS", // good 4 u
	"2xLMifQCjDGFmkHkpNLD9h", // SICKO MODE
	"1fDsrQ23eTAVFElUMaf38X",
}

// WidgetResolver produces embeddable track IDs for a market through
// progressively broader catalog queries.
type WidgetResolver struct {
	catalog  ports.Catalog
	shuffler Shuffler
}

func NewWidgetResolver(catalog ports.Catalog, shuffler Shuffler) *WidgetResolver {
	return &WidgetResolver{catalog: catalog, shuffler: shuffler}
}

type widgetTier struct {
	source domain.WidgetSource
	fetch  func(ctx context.Context, market domain.Market, need int) ([]string, error)
}

// Resolve walks the tiers in order and returns the first non-empty list along
// with its source. The result is never empty for need > 0.
//
// Within a tier, a playlist whose tracks cannot be fetched is skipped and the
// tier moves on to the next playlist. Toplist and featured fail as a whole only
// when their playlist listing fails; editorial fails only when every editorial
// playlist fails. A failed or empty tier falls through to the next one.
func (r *WidgetResolver) Resolve(ctx context.Context, market domain.Market, need int) ([]string, domain.WidgetSource) {
	log := logging.Ctx(ctx)
	tiers := []widgetTier{
		{domain.WidgetsFromToplist, r.Toplist},
		{domain.WidgetsFromFeatured, r.Featured},
		{domain.WidgetsFromEditorial, func(ctx context.Context, _ domain.Market, need int) ([]string, error) {
			return r.Editorial(ctx, need)
		}},
	}

	for _, tier := range tiers {
		ids, err := tier.fetch(ctx, market, need)
		if err != nil {
			log.Warn().Err(err).Str("tier", string(tier.source)).Str("market", market.String()).Msg("widget tier failed")
			continue
		}
		if len(ids) == 0 {
			log.Debug().Str("tier", string(tier.source)).Str("market", market.String()).Msg("widget tier empty")
			continue
		}
		return ids, tier.source
	}

	log.Warn().Str("market", market.String()).Msg("all catalog widget tiers empty, using hardcoded tracks")
	return Hardcoded(need), domain.WidgetsFromHardcoded
}

// Toplist draws from the first usable playlist in the market's "toplists" category.
func (r *WidgetResolver) Toplist(ctx context.Context, market domain.Market, need int) ([]string, error) {
	categories, err := r.catalog.Categories(ctx, market, browseCategoryLimit)
	if err != nil {
		return nil, fmt.Errorf("toplist tier: %w", err)
	}

	found := false
	for _, c := range categories {
		if c.ID == domain.ToplistsCategoryID {
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}

	playlists, err := r.catalog.CategoryPlaylists(ctx, domain.ToplistsCategoryID, market, browsePlaylistLimit)
	if err != nil {
		return nil, fmt.Errorf("toplist tier: %w", err)
	}
	return r.firstPlaylist(ctx, playlists, market, need)
}

// Featured draws from the first usable featured playlist for the market.
func (r *WidgetResolver) Featured(ctx context.Context, market domain.Market, need int) ([]string, error) {
	playlists, err := r.catalog.FeaturedPlaylists(ctx, market, browsePlaylistLimit)
	if err != nil {
		return nil, fmt.Errorf("featured tier: %w", err)
	}
	return r.firstPlaylist(ctx, playlists, market, need)
}

// firstPlaylist returns shuffled IDs from the first playlist that has any
// playable track. Playlists whose tracks cannot be fetched are skipped.
func (r *WidgetResolver) firstPlaylist(ctx context.Context, playlists []domain.Playlist, market domain.Market, need int) ([]string, error) {
	for _, pl := range playlists {
		tracks, err := r.catalog.PlaylistTracks(ctx, pl.ID, market, playlistTrackCap)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logging.Ctx(ctx).Debug().Err(err).Str("playlist", pl.ID).Msg("skipping playlist")
			continue
		}
		if ids := playableIDs(tracks); len(ids) > 0 {
			return shuffledIDs(r.shuffler, ids, need), nil
		}
	}
	return nil, nil
}

// Editorial pools playable tracks from every global editorial playlist.
// It fails only when none of the playlists could be read.
func (r *WidgetResolver) Editorial(ctx context.Context, need int) ([]string, error) {
	var ids []string
	var errs []error
	for _, pid := range GlobalEditorialPlaylists {
		tracks, err := r.catalog.PlaylistTracks(ctx, pid, "", playlistTrackCap)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ids = append(ids, playableIDs(tracks)...)
	}
	if len(errs) == len(GlobalEditorialPlaylists) {
		return nil, fmt.Errorf("editorial tier: %w", errors.Join(errs...))
	}
	return shuffledIDs(r.shuffler, ids, need), nil
}

// Hardcoded returns the first need entries of HardcodedTrackIDs.
func Hardcoded(need int) []string {
	if need < 0 || need > len(HardcodedTrackIDs) {
		need = len(HardcodedTrackIDs)
	}
	out := make([]string, need)
	copy(out, HardcodedTrackIDs)
	return out
}

func playableIDs(tracks []domain.Track) []string {
	ids := make([]string, 0, len(tracks))
	for _, t := range tracks {
		if t.Playable() {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
