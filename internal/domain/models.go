package domain

// Movie represents a single catalog entry
type Movie struct {
	Name     string `toml:"name" yaml:"name" json:"name"`
	PosterID string `toml:"poster" yaml:"poster" json:"poster"` // opaque poster key, shown as a caption
}

// Catalog is an ordered set of movies together with where it came from
type Catalog struct {
	Movies []Movie
	Source string // file path, or "builtin" for the compiled-in dataset
}

// PageState describes the carousel position shown by the page indicator
type PageState struct {
	Active int
	Total  int
}
