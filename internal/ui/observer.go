package ui

import (
	"reelview/internal/browser"
	"reelview/internal/domain"
	"reelview/internal/eventbus"
)

// BusObserver publishes browser changes as domain events
type BusObserver struct {
	bus eventbus.EventBus
}

var _ browser.Observer = (*BusObserver)(nil)

// NewBusObserver creates an observer that publishes to bus
func NewBusObserver(bus eventbus.EventBus) *BusObserver {
	return &BusObserver{bus: bus}
}

// VisibleChanged publishes a SearchPerformedEvent
func (o *BusObserver) VisibleChanged(query string, visible []domain.Movie) {
	o.bus.Publish(eventbus.SearchPerformedEvent{Query: query, Matches: len(visible)})
}

// ActivePageChanged publishes a PageChangedEvent
func (o *BusObserver) ActivePageChanged(page domain.PageState) {
	o.bus.Publish(eventbus.PageChangedEvent{Page: page})
}
