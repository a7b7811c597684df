package spotify

// spotifyImage is one album artwork rendition.
type spotifyImage struct {
	URL string `json:"url"`
}

type spotifyAlbum struct {
	Images []spotifyImage `json:"images"`
}

type spotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// spotifyTrack represents the Spotify API response for a track.
// ID and PreviewURL are null for some local or region-locked tracks.
type spotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	PreviewURL string          `json:"preview_url"`
	Artists    []spotifyArtist `json:"artists"`
	Album      spotifyAlbum    `json:"album"`
	IsLocal    bool            `json:"is_local"`
}

type spotifyPlaylist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type spotifyCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type searchArtistsResponse struct {
	Artists struct {
		Items []spotifyArtist `json:"items"`
	} `json:"artists"`
}

type topTracksResponse struct {
	Tracks []spotifyTrack `json:"tracks"`
}

// playlistPage is shared by featured-playlists and category-playlists.
// Items may contain nulls.
type playlistPage struct {
	Playlists struct {
		Items []*spotifyPlaylist `json:"items"`
	} `json:"playlists"`
}

type categoriesResponse struct {
	Categories struct {
		Items []*spotifyCategory `json:"items"`
	} `json:"categories"`
}

type playlistTracksPage struct {
	Items []struct {
		Track *spotifyTrack `json:"track"`
	} `json:"items"`
	Next string `json:"next"`
}
