package ports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
)

var (
	// ErrAuth indicates the client-credentials exchange failed.
	ErrAuth = errors.New("catalog authentication failed")
	// ErrCatalogRequest indicates a catalog GET failed.
	ErrCatalogRequest = errors.New("catalog request failed")
	// ErrNoArtistMatch indicates neither the market-scoped nor the global search found the artist.
	ErrNoArtistMatch = errors.New("no artist match")
)

// AuthError carries the token endpoint's status and body.
type AuthError struct {
	Status int
	Body   string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog auth failed: %v", e.Err)
	}
	return fmt.Sprintf("catalog auth failed: status %d: %s", e.Status, e.Body)
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

// CatalogRequestError carries the failed endpoint, status and body.
// Status is zero for transport errors and rejected calls.
type CatalogRequestError struct {
	Endpoint   string
	Status     int
	Body       string
	RetryAfter time.Duration
	Err        error
}

func (e *CatalogRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog GET %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("catalog GET %s: status %d: %s", e.Endpoint, e.Status, e.Body)
}

func (e *CatalogRequestError) Unwrap() error { return e.Err }

func (e *CatalogRequestError) Is(target error) bool {
	return target == ErrCatalogRequest
}

// NoArtistMatchError names the artist that could not be resolved.
type NoArtistMatchError struct {
	Name   string
	Market domain.Market
}

func (e NoArtistMatchError) Error() string {
	return fmt.Sprintf("no artist match for %q in market %q or globally", e.Name, e.Market)
}

func (e NoArtistMatchError) Is(target error) bool {
	return target == ErrNoArtistMatch
}

// ArtistResolver turns an artist name into a catalog ID.
type ArtistResolver interface {
	ResolveArtistID(ctx context.Context, name string, market domain.Market) (string, error)
}

// Catalog is the subset of the music catalog API the pipeline reads.
// An empty market means no market filter.
type Catalog interface {
	ArtistResolver
	ArtistTopTracks(ctx context.Context, artistID string, market domain.Market) ([]domain.Track, error)
	FeaturedPlaylists(ctx context.Context, market domain.Market, limit int) ([]domain.Playlist, error)
	Categories(ctx context.Context, market domain.Market, limit int) ([]domain.Category, error)
	CategoryPlaylists(ctx context.Context, categoryID string, market domain.Market, limit int) ([]domain.Playlist, error)
	PlaylistTracks(ctx context.Context, playlistID string, market domain.Market, limit int) ([]domain.Track, error)
}

// TokenChecker exposes the credential exchange for diagnostics.
type TokenChecker interface {
	Token(ctx context.Context) (string, error)
}
