package domain

// Playlist is a catalog playlist summary as returned by browse endpoints.
type Playlist struct {
	ID   string
	Name string
}

// Category is a catalog browse category.
type Category struct {
	ID   string
	Name string
}

// ToplistsCategoryID identifies the per-country charts category.
const ToplistsCategoryID = "toplists"
