package domain

import "strings"

// Track is a catalog track record.
type Track struct {
	ID         string
	Name       string
	Artists    []string // display names, catalog order
	Images     []string // album image URLs, catalog order (largest first)
	PreviewURL string   // empty when the catalog has no preview
	IsLocal    bool
}

// Playable reports whether the track can be surfaced: it has an ID and is not local-only.
func (t Track) Playable() bool {
	return t.ID != "" && !t.IsLocal
}

// Card is the display projection of a Track.
type Card struct {
	ID         string
	Name       string
	Artists    string
	ImageURL   string
	PreviewURL string
}

// NewCard projects t into a Card.
//
// The catalog orders album images largest to smallest, so the second entry is
// a mid-size thumbnail and is preferred over the full-size first one.
func NewCard(t Track) Card {
	image := ""
	switch {
	case len(t.Images) > 1:
		image = t.Images[1]
	case len(t.Images) == 1:
		image = t.Images[0]
	}
	return Card{
		ID:         t.ID,
		Name:       t.Name,
		Artists:    strings.Join(t.Artists, ", "),
		ImageURL:   image,
		PreviewURL: t.PreviewURL,
	}
}
