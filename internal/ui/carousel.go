package ui

import "math"

// PageForOffset returns the page nearest to a horizontal scroll offset
func PageForOffset(offset, pageWidth int) int {
	if pageWidth <= 0 {
		return 0
	}
	return int(math.Round(float64(offset) / float64(pageWidth)))
}

// ItemSize returns the poster size for a carousel viewport: the full width
// minus the gap, and aspect times that width for the height.
func ItemSize(viewportWidth, gap int, aspect float64) (width, height int) {
	width = viewportWidth - gap
	if width < 0 {
		width = 0
	}
	return width, int(float64(width) * aspect)
}

// Carousel tracks the horizontal scroll position of the poster strip.
// Offsets are in columns; one page is pageWidth columns wide.
type Carousel struct {
	offset    int
	pageWidth int
	count     int
}

// NewCarousel creates a carousel over count items
func NewCarousel(count int) *Carousel {
	return &Carousel{count: count}
}

// Offset returns the current scroll offset
func (c *Carousel) Offset() int {
	return c.offset
}

// PageWidth returns the width of one page
func (c *Carousel) PageWidth() int {
	return c.pageWidth
}

// Count returns the number of items
func (c *Carousel) Count() int {
	return c.count
}

// Page returns the page nearest to the current offset, within the item range
func (c *Carousel) Page() int {
	if c.count == 0 {
		return 0
	}
	page := PageForOffset(c.offset, c.pageWidth)
	if page < 0 {
		return 0
	}
	if page > c.count-1 {
		return c.count - 1
	}
	return page
}

// SetPageWidth changes the page width and keeps the current page in view
func (c *Carousel) SetPageWidth(width int) {
	page := c.Page()
	if width < 0 {
		width = 0
	}
	c.pageWidth = width
	c.offset = page * width
}

// SetCount replaces the item count and returns to the first page
func (c *Carousel) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	c.offset = 0
}

// ScrollBy moves the offset by delta columns, clamped to the strip.
// It reports whether the offset changed.
func (c *Carousel) ScrollBy(delta int) bool {
	return c.setOffset(c.offset + delta)
}

// Step moves by whole pages from the current page
func (c *Carousel) Step(pages int) bool {
	return c.setOffset((c.Page() + pages) * c.pageWidth)
}

// Snap aligns the offset to the nearest page
func (c *Carousel) Snap() bool {
	return c.setOffset(c.Page() * c.pageWidth)
}

func (c *Carousel) setOffset(offset int) bool {
	if offset < 0 {
		offset = 0
	}
	if limit := c.maxOffset(); offset > limit {
		offset = limit
	}
	if offset == c.offset {
		return false
	}
	c.offset = offset
	return true
}

func (c *Carousel) maxOffset() int {
	if c.count == 0 {
		return 0
	}
	return (c.count - 1) * c.pageWidth
}
