package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
)

var errCatalogDown = &ports.CatalogRequestError{Endpoint: "test", Status: 503}

// mockCatalog is an in-memory ports.Catalog. Every method fails once ctx is done.
type mockCatalog struct {
	mu sync.Mutex

	artistIDs  map[string]string
	resolveErr map[string]error
	topTracks  map[string][]domain.Track
	topErr     map[string]error

	categories        []domain.Category
	categoriesErr     error
	categoryPlaylists []domain.Playlist
	categoryErr       error
	featured          []domain.Playlist
	featuredErr       error
	playlistTracks    map[string][]domain.Track
	playlistErr       map[string]error

	token    string
	tokenErr error

	resolved        []string
	topTrackCalls   []string
	playlistCalls   []string
	playlistMarkets []domain.Market
}

func (m *mockCatalog) ResolveArtistID(ctx context.Context, name string, market domain.Market) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved = append(m.resolved, name)
	if err := m.resolveErr[name]; err != nil {
		return "", err
	}
	id, ok := m.artistIDs[name]
	if !ok {
		return "", ports.NoArtistMatchError{Name: name, Market: market}
	}
	return id, nil
}

func (m *mockCatalog) ArtistTopTracks(ctx context.Context, artistID string, market domain.Market) ([]domain.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topTrackCalls = append(m.topTrackCalls, artistID)
	if err := m.topErr[artistID]; err != nil {
		return nil, err
	}
	return append([]domain.Track(nil), m.topTracks[artistID]...), nil
}

func (m *mockCatalog) FeaturedPlaylists(ctx context.Context, market domain.Market, limit int) ([]domain.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.featured, m.featuredErr
}

func (m *mockCatalog) Categories(ctx context.Context, market domain.Market, limit int) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.categories, m.categoriesErr
}

func (m *mockCatalog) CategoryPlaylists(ctx context.Context, categoryID string, market domain.Market, limit int) ([]domain.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.categoryPlaylists, m.categoryErr
}

func (m *mockCatalog) PlaylistTracks(ctx context.Context, playlistID string, market domain.Market, limit int) ([]domain.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playlistCalls = append(m.playlistCalls, playlistID)
	m.playlistMarkets = append(m.playlistMarkets, market)
	if err := m.playlistErr[playlistID]; err != nil {
		return nil, err
	}
	return append([]domain.Track(nil), m.playlistTracks[playlistID]...), nil
}

func (m *mockCatalog) Token(ctx context.Context) (string, error) {
	return m.token, m.tokenErr
}

// failingCatalog returns a catalog on which every call fails.
func failingCatalog() *mockCatalog {
	all := map[string]error{}
	for _, id := range GlobalEditorialPlaylists {
		all[id] = errCatalogDown
	}
	return &mockCatalog{
		categoriesErr: errCatalogDown,
		featuredErr:   errCatalogDown,
		playlistErr:   all,
		resolveErr:    map[string]error{},
	}
}

// keepOrder is a Shuffler that leaves input untouched.
type keepOrder struct{ calls int }

func (k *keepOrder) Shuffle(n int, swap func(i, j int)) { k.calls++ }

// reverseOrder is a deterministic Shuffler that reverses its input.
type reverseOrder struct{}

func (reverseOrder) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

type mockEstimator struct {
	label   string
	err     error
	calls   int
	payload []byte
}

func (m *mockEstimator) DominantEmotion(ctx context.Context, jpeg []byte) (string, error) {
	m.calls++
	m.payload = jpeg
	if len(jpeg) == 0 {
		return "", errors.New("empty payload")
	}
	return m.label, m.err
}

func tracks(ids ...string) []domain.Track {
	out := make([]domain.Track, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Track{ID: id, Name: "name-" + id, Artists: []string{"artist"}})
	}
	return out
}

func solidImage(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// nrgbaImage fills an image with a straight-alpha colour, so transparent
// pixels keep their RGB.
func nrgbaImage(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, c color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(c)); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func ids(ts []domain.Track) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}
