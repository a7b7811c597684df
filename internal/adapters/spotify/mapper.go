package spotify

import "github.com/ewilliams-labs/moodmix/internal/core/domain"

// mapTrackToDomain converts a raw Spotify track to a domain track.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	artists := make([]string, 0, len(st.Artists))
	for _, a := range st.Artists {
		artists = append(artists, a.Name)
	}

	images := make([]string, 0, len(st.Album.Images))
	for _, img := range st.Album.Images {
		images = append(images, img.URL)
	}

	return domain.Track{
		ID:         st.ID,
		Name:       st.Name,
		Artists:    artists,
		Images:     images,
		PreviewURL: st.PreviewURL,
		IsLocal:    st.IsLocal,
	}
}

func mapTracksToDomain(sts []spotifyTrack) []domain.Track {
	tracks := make([]domain.Track, 0, len(sts))
	for _, st := range sts {
		tracks = append(tracks, mapTrackToDomain(st))
	}
	return tracks
}

// mapPlaylistsToDomain drops null entries, which browse endpoints return for
// playlists that are unavailable in the market.
func mapPlaylistsToDomain(items []*spotifyPlaylist) []domain.Playlist {
	playlists := make([]domain.Playlist, 0, len(items))
	for _, p := range items {
		if p == nil || p.ID == "" {
			continue
		}
		playlists = append(playlists, domain.Playlist{ID: p.ID, Name: p.Name})
	}
	return playlists
}

func mapCategoriesToDomain(items []*spotifyCategory) []domain.Category {
	categories := make([]domain.Category, 0, len(items))
	for _, c := range items {
		if c == nil {
			continue
		}
		categories = append(categories, domain.Category{ID: c.ID, Name: c.Name})
	}
	return categories
}
