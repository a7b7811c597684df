package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
)

const (
	playlistPageSize = 100
	playlistFields   = "items(track(id,name,preview_url,artists(name),album(images),is_local)),next"
)

// PlaylistTracks follows the playlist's next cursor until at least limit items
// have been read or the listing ends. Null track entries are dropped; callers
// filter local and ID-less tracks. An empty market omits the market filter.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string, market domain.Market, limit int) ([]domain.Track, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprint(playlistPageSize))
	params.Set("fields", playlistFields)
	if market != "" {
		params.Set("market", market.String())
	}

	next := fmt.Sprintf("%s/playlists/%s/tracks", c.baseURL, url.PathEscape(playlistID))
	seen := 0
	var tracks []domain.Track

	for next != "" && (limit <= 0 || seen < limit) {
		var page playlistTracksPage
		if err := c.get(ctx, "playlist-tracks", next, params, &page); err != nil {
			return nil, fmt.Errorf("spotify adapter: tracks for playlist %s: %w", playlistID, err)
		}
		seen += len(page.Items)
		for _, item := range page.Items {
			if item.Track == nil {
				continue
			}
			tracks = append(tracks, mapTrackToDomain(*item.Track))
		}
		if page.Next != "" {
			if err := c.checkCursor(page.Next); err != nil {
				return nil, fmt.Errorf("spotify adapter: tracks for playlist %s: %w", playlistID, err)
			}
		}
		// The cursor already carries the query.
		next, params = page.Next, nil
	}

	return tracks, nil
}

// checkCursor rejects pagination cursors that point outside the configured API
// origin, since they are fetched with the bearer token attached.
func (c *Client) checkCursor(rawURL string) error {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return &ports.CatalogRequestError{Endpoint: "playlist-tracks", Err: fmt.Errorf("invalid base url: %w", err)}
	}
	next, err := url.Parse(rawURL)
	if err != nil {
		return &ports.CatalogRequestError{Endpoint: "playlist-tracks", Err: fmt.Errorf("invalid next cursor: %w", err)}
	}
	if !strings.EqualFold(next.Scheme, base.Scheme) || !strings.EqualFold(next.Host, base.Host) {
		return &ports.CatalogRequestError{
			Endpoint: "playlist-tracks",
			Err:      fmt.Errorf("next cursor host %q does not match %q", next.Host, base.Host),
		}
	}
	return nil
}
