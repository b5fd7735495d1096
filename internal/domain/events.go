package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded          EventType = "CatalogLoaded"
	EventCatalogReloadRequested EventType = "CatalogReloadRequested"
	EventSearchPerformed        EventType = "SearchPerformed"
	EventPageChanged            EventType = "PageChanged"
	EventError                  EventType = "Error"
	EventConfigLoaded           EventType = "ConfigLoaded"
	EventConfigSaved            EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted when a catalog has been read from its source
type CatalogLoadedEvent struct {
	Catalog Catalog
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogReloadRequestedEvent is emitted to ask the catalog service to re-read its source
type CatalogReloadRequestedEvent struct{}

func (e CatalogReloadRequestedEvent) Type() EventType { return EventCatalogReloadRequested }

// SearchPerformedEvent is emitted after the visible list was recomputed
type SearchPerformedEvent struct {
	Query   string
	Matches int
}

func (e SearchPerformedEvent) Type() EventType { return EventSearchPerformed }

// PageChangedEvent is emitted when the carousel reports a new active page
type PageChangedEvent struct {
	Page PageState
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
