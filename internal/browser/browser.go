// Package browser holds the movie catalog shown on screen, the currently
// searched subset of it and the carousel position.
//
// A Browser is owned by a single event loop and is not safe for concurrent use.
package browser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"reelview/internal/domain"
)

// ErrIndexOutOfRange is returned when a renderer asks for an item beyond the
// current count. It means the renderer's count is stale.
var ErrIndexOutOfRange = errors.New("index out of range")

// Observer is notified after the browser state changes
type Observer interface {
	VisibleChanged(query string, visible []domain.Movie)
	ActivePageChanged(page domain.PageState)
}

// Option configures a Browser
type Option func(*Browser)

// WithObserver attaches an observer
func WithObserver(o Observer) Option {
	return func(b *Browser) {
		if o != nil {
			b.observers = append(b.observers, o)
		}
	}
}

// Browser owns the full catalog and the filtered view of it
type Browser struct {
	all        []domain.Movie
	visible    []domain.Movie
	query      string
	activePage int
	observers  []Observer
}

// New creates a browser over source. Any slice is accepted, including nil.
func New(source []domain.Movie, opts ...Option) *Browser {
	b := &Browser{}
	for _, opt := range opts {
		opt(b)
	}
	b.reset(source)
	return b
}

// Initialize replaces the catalog. The search is cleared and the carousel
// returns to the first page.
func (b *Browser) Initialize(source []domain.Movie) {
	b.reset(source)
	b.notifyVisible()
	b.notifyPage()
}

func (b *Browser) reset(source []domain.Movie) {
	b.all = make([]domain.Movie, len(source))
	copy(b.all, source)
	b.visible = b.all
	b.query = ""
	b.activePage = 0
}

// Search recomputes the visible list for query and returns it.
// An empty query shows everything; otherwise a movie is kept when its name
// contains the query, ignoring case.
func (b *Browser) Search(query string) []domain.Movie {
	b.query = query
	b.visible = filter(b.all, query)
	b.notifyVisible()
	return b.Visible()
}

func filter(all []domain.Movie, query string) []domain.Movie {
	if query == "" {
		return all
	}

	matches := make([]domain.Movie, 0, len(all))
	// ToLower would turn stray bytes into U+FFFD and match unrelated names
	if !utf8.ValidString(query) {
		return matches
	}

	needle := strings.ToLower(query)
	for _, m := range all {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			matches = append(matches, m)
		}
	}
	return matches
}

// RecordActivePage stores the page the carousel reports as centred.
// The index is not checked against the catalog size.
func (b *Browser) RecordActivePage(index int) {
	b.activePage = index
	b.notifyPage()
}

// ActivePage returns the centred carousel page. ok is false for an empty catalog.
func (b *Browser) ActivePage() (page int, ok bool) {
	if len(b.all) == 0 {
		return 0, false
	}
	return b.activePage, true
}

// PageCount returns the number of carousel pages
func (b *Browser) PageCount() int {
	return len(b.all)
}

// Query returns the query of the last search
func (b *Browser) Query() string {
	return b.query
}

// All returns a copy of the full catalog
func (b *Browser) All() []domain.Movie {
	return clone(b.all)
}

// Visible returns a copy of the movies matching the last search
func (b *Browser) Visible() []domain.Movie {
	return clone(b.visible)
}

func clone(movies []domain.Movie) []domain.Movie {
	out := make([]domain.Movie, len(movies))
	copy(out, movies)
	return out
}

func (b *Browser) notifyVisible() {
	for _, o := range b.observers {
		o.VisibleChanged(b.query, b.Visible())
	}
}

func (b *Browser) notifyPage() {
	state := domain.PageState{Active: b.activePage, Total: len(b.all)}
	for _, o := range b.observers {
		o.ActivePageChanged(state)
	}
}

// ItemSource is the pull interface a carousel renders from
type ItemSource interface {
	Count() int
	ItemAt(i int) (string, error)
}

// RowSource is the pull interface a list renders from
type RowSource interface {
	Count() int
	RowAt(i int) (name, posterID string, err error)
}

// Carousel exposes the full catalog as poster keys
func (b *Browser) Carousel() ItemSource {
	return carouselSource{b: b}
}

// List exposes the search results as rows
func (b *Browser) List() RowSource {
	return listSource{b: b}
}

type carouselSource struct{ b *Browser }

func (s carouselSource) Count() int { return len(s.b.all) }

func (s carouselSource) ItemAt(i int) (string, error) {
	if i < 0 || i >= len(s.b.all) {
		return "", fmt.Errorf("carousel item %d of %d: %w", i, len(s.b.all), ErrIndexOutOfRange)
	}
	return s.b.all[i].PosterID, nil
}

type listSource struct{ b *Browser }

func (s listSource) Count() int { return len(s.b.visible) }

func (s listSource) RowAt(i int) (string, string, error) {
	if i < 0 || i >= len(s.b.visible) {
		return "", "", fmt.Errorf("list row %d of %d: %w", i, len(s.b.visible), ErrIndexOutOfRange)
	}
	m := s.b.visible[i]
	return m.Name, m.PosterID, nil
}
