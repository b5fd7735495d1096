package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"reelview/internal/browser"
	"reelview/internal/config"
	"reelview/internal/eventbus"
	"reelview/internal/ui/views"
)

const (
	wheelStep     = 4 // columns per wheel notch
	snapDelay     = 150 * time.Millisecond
	statusTimeout = 3 * time.Second
)

// Model represents the application state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	browser *browser.Browser
	source  string

	carousel *Carousel
	search   textinput.Model
	list     viewport.Model
	help     help.Model
	keys     keyMap
	renderer *views.Renderer

	width      int
	height     int
	itemWidth  int
	itemHeight int

	showHelp      bool
	statusMessage string
	statusIsError bool

	program     *tea.Program // for terminal management (pager)
	helpOps     *HelpOps
	inPagerMode bool // tracks if we're currently in pager mode
	snapSeq     int
}

// NewModel creates a new UI model around an initialized browser
func NewModel(bus eventbus.EventBus, cfg *config.Config, b *browser.Browser, source string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	search := textinput.New()
	search.Prompt = "> "
	search.Placeholder = "Search movies"
	search.SetValue(b.Query())

	m := &Model{
		bus:      bus,
		config:   cfg,
		browser:  b,
		source:   source,
		carousel: NewCarousel(b.PageCount()),
		search:   search,
		list:     viewport.New(0, 0),
		help:     help.New(),
		keys:     defaultKeyMap(),
		renderer: views.NewRenderer(),
	}
	m.refreshList()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case snapMsg:
		// A newer wheel burst has scheduled its own snap
		if msg.seq != m.snapSeq {
			return m, nil
		}
		if m.carousel.Snap() {
			m.recordPage()
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the popup
			zap.S().Warnf("Help pager failed: %v, falling back to popup", msg.err)
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil
	}

	// Cursor blink and other textinput messages
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "esc", "?", "q", "enter":
			m.showHelp = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.search.Focused() {
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, m.keys.Dismiss):
			m.search.Blur()
			return m, nil
		}

		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			m.applySearch()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevPage):
		m.stepCarousel(-1)

	case key.Matches(msg, m.keys.NextPage):
		m.stepCarousel(1)

	case key.Matches(msg, m.keys.Up):
		m.list.LineUp(1)

	case key.Matches(msg, m.keys.Down):
		m.list.LineDown(1)

	case key.Matches(msg, m.keys.PageUp):
		m.list.PageUp()

	case key.Matches(msg, m.keys.PageDown):
		m.list.PageDown()

	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Reload):
		m.bus.Publish(eventbus.CatalogReloadRequestedEvent{})
		return m, m.setStatus("Reloading catalog...", false)

	case key.Matches(msg, m.keys.Help):
		if m.config.UISettings.HelpInPager && m.program != nil {
			return m, m.fetchHelpPager(renderHelpContent(m.keys))
		}
		m.showHelp = true
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	delta := 0
	switch {
	case msg.Button == tea.MouseButtonWheelRight,
		msg.Shift && msg.Button == tea.MouseButtonWheelDown:
		delta = wheelStep
	case msg.Button == tea.MouseButtonWheelLeft,
		msg.Shift && msg.Button == tea.MouseButtonWheelUp:
		delta = -wheelStep
	case msg.Button == tea.MouseButtonWheelUp:
		m.list.LineUp(1)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.list.LineDown(1)
		return m, nil
	default:
		return m, nil
	}

	if !m.carousel.ScrollBy(delta) {
		return m, nil
	}
	m.recordPage()

	m.snapSeq++
	seq := m.snapSeq
	return m, tea.Tick(snapDelay, func(time.Time) tea.Msg {
		return snapMsg{seq: seq}
	})
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		m.source = e.Catalog.Source
		m.search.SetValue("")
		m.browser.Initialize(e.Catalog.Movies)
		m.carousel.SetCount(m.browser.PageCount())
		m.refreshList()
		m.list.GotoTop()
		return m, m.setStatus(fmt.Sprintf("Loaded %d movies", len(e.Catalog.Movies)), false)

	case eventbus.ErrorEvent:
		zap.S().Errorf("%s: %v", e.Message, e.Err)
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return m, m.setStatus(msg, true)
	}
	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Source:         m.source,
		Carousel:       m.browser.Carousel(),
		CarouselOffset: m.carousel.Offset(),
		ViewportWidth:  m.viewportWidth(),
		ItemWidth:      m.itemWidth,
		ItemHeight:     m.itemHeight,
		PageCount:      m.browser.PageCount(),
		SearchInput:    m.search.View(),
		SearchFocused:  m.search.Focused(),
		VisibleCount:   len(m.browser.Visible()),
		TotalCount:     m.browser.PageCount(),
		ListView:       m.list.View(),
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		HelpBar:        m.help.View(m.keys),
		ShowHelp:       m.showHelp,
	}
	if page, ok := m.browser.ActivePage(); ok {
		state.ActivePage = page
	}
	if m.showHelp {
		state.HelpContent = renderHelpContent(m.keys)
	}

	return m.renderer.Render(state)
}

// layout sizes the carousel, search box and list for the current window
func (m *Model) layout() {
	vw := m.viewportWidth()

	w, h := ItemSize(vw, m.config.UISettings.ItemGap, m.config.UISettings.PosterAspect)
	// Terminal cells are roughly twice as tall as they are wide, and the
	// list still needs room below the carousel.
	limit := (m.height - m.renderer.ChromeHeight()) / 2
	if m.config.UISettings.MaxPosterHeight > 0 && m.config.UISettings.MaxPosterHeight < limit {
		limit = m.config.UISettings.MaxPosterHeight
	}
	if h > limit {
		h = limit
	}
	if h < 0 {
		h = 0
	}
	m.itemWidth, m.itemHeight = w, h

	m.carousel.SetPageWidth(vw)

	listHeight := m.height - m.renderer.ChromeHeight() - h
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.Width = vw
	m.list.Height = listHeight

	searchWidth := m.renderer.SearchInnerWidth(vw) - len(m.search.Prompt) - 1
	if searchWidth < 1 {
		searchWidth = 1
	}
	m.search.Width = searchWidth

	m.refreshList()
}

func (m *Model) viewportWidth() int {
	vw := m.width - m.renderer.ChromeWidth()
	if vw < 0 {
		return 0
	}
	return vw
}

func (m *Model) stepCarousel(pages int) {
	if m.carousel.Step(pages) {
		m.recordPage()
	}
}

// recordPage reports the carousel page to the browser when it changes
func (m *Model) recordPage() {
	page := m.carousel.Page()
	if current, ok := m.browser.ActivePage(); ok && current == page {
		return
	}
	m.browser.RecordActivePage(page)
}

func (m *Model) applySearch() {
	m.browser.Search(m.search.Value())
	m.refreshList()
	m.list.GotoTop()
}

func (m *Model) refreshList() {
	m.list.SetContent(m.renderer.List().Content(m.browser.List(), m.browser.Query()))
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusMessage = message
	m.statusIsError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
