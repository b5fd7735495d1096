package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"reelview/internal/browser"
)

// ListRenderer renders the searchable movie list
type ListRenderer struct {
	styles *Styles
}

// NewListRenderer creates a new list renderer
func NewListRenderer(styles *Styles) *ListRenderer {
	return &ListRenderer{styles: styles}
}

// Content renders every row of src, one per line, for display in a scrolling viewport
func (lr *ListRenderer) Content(src browser.RowSource, query string) string {
	count := src.Count()
	if count == 0 {
		if query == "" {
			return lr.styles.Dim.Render("No movies in catalog")
		}
		return lr.styles.Dim.Render(fmt.Sprintf("No movies match %q", query))
	}

	type row struct{ name, poster string }
	rows := make([]row, 0, count)
	nameWidth := 0
	for i := 0; i < count; i++ {
		name, poster, err := src.RowAt(i)
		if err != nil {
			zap.S().Errorf("List render: %v", err)
			continue
		}
		rows = append(rows, row{name, poster})
		if w := lipgloss.Width(name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lr.highlight(r.name, query))
		b.WriteString(strings.Repeat(" ", nameWidth-lipgloss.Width(r.name)+2))
		b.WriteString(lr.styles.RowPoster.Render(r.poster))
	}
	return b.String()
}

// Header renders the "n of m" line above the list
func (lr *ListRenderer) Header(visible, total int) string {
	if visible == total {
		return lr.styles.ListHeader.Render(fmt.Sprintf("Movies (%d)", total))
	}
	return lr.styles.ListHeader.Render(fmt.Sprintf("Movies (%d of %d)", visible, total))
}

// highlight marks the first case-insensitive occurrence of query in name
func (lr *ListRenderer) highlight(name, query string) string {
	if query == "" {
		return lr.styles.RowName.Render(name)
	}
	lower := strings.ToLower(name)
	// Byte offsets are only comparable when lowering kept the length
	if len(lower) != len(name) {
		return lr.styles.RowName.Render(name)
	}
	needle := strings.ToLower(query)
	idx := strings.Index(lower, needle)
	if idx < 0 {
		return lr.styles.RowName.Render(name)
	}
	end := idx + len(needle)
	if !utf8.ValidString(name[:idx]) || !utf8.ValidString(name[idx:end]) {
		return lr.styles.RowName.Render(name)
	}
	return lr.styles.RowName.Render(name[:idx]) +
		lr.styles.Highlight.Render(name[idx:end]) +
		lr.styles.RowName.Render(name[end:])
}
