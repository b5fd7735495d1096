package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reelview/internal/browser"
)

// fixedRows counts the lines the screen spends outside the carousel and the
// list: title, blank, page indicator, blank, search box (3), blank, list
// header and the help bar.
const fixedRows = 10

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Source string

	Carousel       browser.ItemSource
	CarouselOffset int
	ViewportWidth  int
	ItemWidth      int
	ItemHeight     int
	ActivePage     int
	PageCount      int

	SearchInput   string
	SearchFocused bool

	VisibleCount int
	TotalCount   int
	ListView     string

	StatusMessage string
	StatusIsError bool
	HelpBar       string
	ShowHelp      bool
	HelpContent   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	carousel *CarouselRenderer
	list     *ListRenderer
	popup    *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:   styles,
		carousel: NewCarouselRenderer(styles),
		list:     NewListRenderer(styles),
		popup:    NewPopupRenderer(styles),
	}
}

// List returns the list renderer, used to fill the list viewport
func (r *Renderer) List() *ListRenderer {
	return r.list
}

// ChromeWidth is the horizontal space taken by the main container padding
func (r *Renderer) ChromeWidth() int {
	return r.styles.Main.GetHorizontalPadding()
}

// ChromeHeight is the vertical space not available to the carousel or the list
func (r *Renderer) ChromeHeight() int {
	return fixedRows + r.styles.Main.GetVerticalPadding()
}

// SearchInnerWidth is the text width left inside a search box of the given outer width
func (r *Renderer) SearchInnerWidth(outer int) int {
	w := outer - r.styles.SearchBox.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popup.Render(state.HelpContent, state.Width, state.Height)
	}

	content := &strings.Builder{}

	content.WriteString(r.titleLine(state))
	content.WriteString("\n\n")

	if state.Carousel != nil {
		content.WriteString(r.carousel.Render(state.Carousel, state.CarouselOffset, state.ViewportWidth, state.ItemWidth, state.ItemHeight))
		content.WriteString("\n")
	}
	content.WriteString(r.PageIndicator(state.ActivePage, state.PageCount, state.ViewportWidth))
	content.WriteString("\n\n")

	box := r.styles.SearchBox
	if state.SearchFocused {
		box = r.styles.SearchFocused
	}
	content.WriteString(box.Width(state.ViewportWidth - box.GetHorizontalBorderSize()).Render(state.SearchInput))
	content.WriteString("\n\n")

	content.WriteString(r.list.Header(state.VisibleCount, state.TotalCount))
	content.WriteString("\n")
	content.WriteString(state.ListView)

	// Push the help bar to the bottom of the screen
	if state.HelpBar != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - r.styles.Main.GetVerticalPadding()
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpBar))
	}

	return r.styles.Main.Render(content.String())
}

// titleLine renders the app name with the catalog source or status on the right
func (r *Renderer) titleLine(state ViewState) string {
	logo := r.styles.Title.Render("reelview")

	right := r.styles.Dim.Render(state.Source)
	if state.StatusMessage != "" {
		if state.StatusIsError {
			right = r.styles.StatusError.Render(state.StatusMessage)
		} else {
			right = r.styles.Status.Render(state.StatusMessage)
		}
	}

	padding := state.ViewportWidth - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}
