package spotify

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
	"github.com/ewilliams-labs/moodmix/internal/logging"
)

// ResolveArtistID returns the catalog ID for an artist name, trying a
// market-scoped search first and an unscoped search second. Successful
// resolutions are cached per (name, market); misses are not.
func (c *Client) ResolveArtistID(ctx context.Context, name string, market domain.Market) (string, error) {
	if id, ok := c.artists.get(name, market); ok {
		return id, nil
	}

	id, err := c.searchArtist(ctx, name, market)
	if err != nil {
		return "", fmt.Errorf("spotify adapter: search artist %q: %w", name, err)
	}
	if id == "" && market != "" {
		id, err = c.searchArtist(ctx, name, "")
		if err != nil {
			return "", fmt.Errorf("spotify adapter: global search artist %q: %w", name, err)
		}
	}
	if id == "" {
		return "", ports.NoArtistMatchError{Name: name, Market: market}
	}

	stored := c.artists.putIfAbsent(name, market, id)
	logging.Ctx(ctx).Debug().Str("artist", name).Str("market", market.String()).Str("id", stored).Msg("resolved artist")
	return stored, nil
}

// searchArtist returns the top artist ID for a query, or "" when there are no results.
func (c *Client) searchArtist(ctx context.Context, name string, market domain.Market) (string, error) {
	params := url.Values{}
	params.Set("q", name)
	params.Set("type", "artist")
	params.Set("limit", "1")
	if market != "" {
		params.Set("market", market.String())
	}

	var body searchArtistsResponse
	if err := c.get(ctx, "search", c.baseURL+"/search", params, &body); err != nil {
		return "", err
	}
	if len(body.Artists.Items) == 0 {
		return "", nil
	}
	return body.Artists.Items[0].ID, nil
}

// ArtistTopTracks returns an artist's top tracks in a market.
func (c *Client) ArtistTopTracks(ctx context.Context, artistID string, market domain.Market) ([]domain.Track, error) {
	params := url.Values{}
	if market != "" {
		params.Set("market", market.String())
	}

	var body topTracksResponse
	endpoint := fmt.Sprintf("%s/artists/%s/top-tracks", c.baseURL, url.PathEscape(artistID))
	if err := c.get(ctx, "top-tracks", endpoint, params, &body); err != nil {
		return nil, fmt.Errorf("spotify adapter: top tracks for %s: %w", artistID, err)
	}
	return mapTracksToDomain(body.Tracks), nil
}
