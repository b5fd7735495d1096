package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"reelview/internal/browser"
)

// CarouselRenderer draws the horizontally scrolling poster strip
type CarouselRenderer struct {
	styles *Styles
}

// NewCarouselRenderer creates a new carousel renderer
func NewCarouselRenderer(styles *Styles) *CarouselRenderer {
	return &CarouselRenderer{styles: styles}
}

// Render draws the part of the strip visible through a viewport that starts
// offset columns into it. Every page is viewportWidth wide: one poster of
// itemWidth followed by the gap.
func (cr *CarouselRenderer) Render(src browser.ItemSource, offset, viewportWidth, itemWidth, itemHeight int) string {
	if viewportWidth <= 0 || itemHeight <= 0 {
		return ""
	}

	count := src.Count()
	if count == 0 {
		return lipgloss.Place(viewportWidth, itemHeight, lipgloss.Center, lipgloss.Center,
			cr.styles.Dim.Render("No movies"))
	}

	if offset < 0 {
		offset = 0
	}
	first := offset / viewportWidth
	last := (offset + viewportWidth - 1) / viewportWidth
	if first > count-1 {
		first = count - 1
	}
	if last > count-1 {
		last = count - 1
	}

	gap := viewportWidth - itemWidth
	blocks := make([]string, 0, 2*(last-first+1))
	for i := first; i <= last; i++ {
		blocks = append(blocks, cr.poster(src, i, itemWidth, itemHeight))
		if gap > 0 {
			blocks = append(blocks, strings.TrimRight(strings.Repeat(strings.Repeat(" ", gap)+"\n", itemHeight), "\n"))
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	left := offset - first*viewportWidth
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		lines[i] = padRight(ansi.Cut(line, left, left+viewportWidth), viewportWidth)
	}
	return strings.Join(lines, "\n")
}

// poster renders a single framed poster caption of exactly width x height cells
func (cr *CarouselRenderer) poster(src browser.ItemSource, i, width, height int) string {
	caption, err := src.ItemAt(i)
	if err != nil {
		zap.S().Errorf("Carousel render: %v", err)
		caption = "?"
	}

	if width < 3 || height < 3 {
		// Too small for a frame
		line := padRight(ansi.Truncate(caption, width, ""), width)
		return strings.TrimRight(strings.Repeat(line+"\n", height), "\n")
	}

	inner := width - 2
	caption = ansi.Truncate(caption, inner, "…")
	return cr.styles.Poster.
		Width(inner).
		Height(height - 2).
		Render(cr.styles.PosterCaption.Render(caption))
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
