package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
)

func browseParams(market domain.Market, limit int) url.Values {
	params := url.Values{}
	if market != "" {
		params.Set("country", market.String())
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return params
}

// FeaturedPlaylists lists the editorially featured playlists for a country.
func (c *Client) FeaturedPlaylists(ctx context.Context, market domain.Market, limit int) ([]domain.Playlist, error) {
	var body playlistPage
	if err := c.get(ctx, "featured-playlists", c.baseURL+"/browse/featured-playlists", browseParams(market, limit), &body); err != nil {
		return nil, fmt.Errorf("spotify adapter: featured playlists: %w", err)
	}
	return mapPlaylistsToDomain(body.Playlists.Items), nil
}

// Categories lists the browse categories for a country.
func (c *Client) Categories(ctx context.Context, market domain.Market, limit int) ([]domain.Category, error) {
	var body categoriesResponse
	if err := c.get(ctx, "categories", c.baseURL+"/browse/categories", browseParams(market, limit), &body); err != nil {
		return nil, fmt.Errorf("spotify adapter: categories: %w", err)
	}
	return mapCategoriesToDomain(body.Categories.Items), nil
}

// CategoryPlaylists lists a browse category's playlists for a country.
func (c *Client) CategoryPlaylists(ctx context.Context, categoryID string, market domain.Market, limit int) ([]domain.Playlist, error) {
	var body playlistPage
	endpoint := fmt.Sprintf("%s/browse/categories/%s/playlists", c.baseURL, url.PathEscape(categoryID))
	if err := c.get(ctx, "category-playlists", endpoint, browseParams(market, limit), &body); err != nil {
		return nil, fmt.Errorf("spotify adapter: playlists for category %s: %w", categoryID, err)
	}
	return mapPlaylistsToDomain(body.Playlists.Items), nil
}
