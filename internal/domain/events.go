package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventWidgetOpened    EventType = "WidgetOpened"
	EventWidgetClosed    EventType = "WidgetClosed"
	EventQuerySubmitted  EventType = "QuerySubmitted"
	EventResultsReceived EventType = "ResultsReceived"
	EventSearchFailed    EventType = "SearchFailed"
	EventHistoryUpdated  EventType = "HistoryUpdated"
	EventResultOpened    EventType = "ResultOpened"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// WidgetOpenedEvent is emitted when the search palette is opened
type WidgetOpenedEvent struct{}

func (e WidgetOpenedEvent) Type() EventType { return EventWidgetOpened }

// WidgetClosedEvent is emitted when the search palette is closed
type WidgetClosedEvent struct{}

func (e WidgetClosedEvent) Type() EventType { return EventWidgetClosed }

// QuerySubmittedEvent is emitted when a query is dispatched to the search service
type QuerySubmittedEvent struct {
	Query    string
	Sequence uint64
}

func (e QuerySubmittedEvent) Type() EventType { return EventQuerySubmitted }

// ResultsReceivedEvent is emitted when a response is accepted and applied
type ResultsReceivedEvent struct {
	Query    string
	Sequence uint64
	Count    int
}

func (e ResultsReceivedEvent) Type() EventType { return EventResultsReceived }

// SearchFailedEvent is emitted when a query fails; displayed state is unchanged
type SearchFailedEvent struct {
	Query    string
	Sequence uint64
	Err      error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// HistoryUpdatedEvent is emitted when a query is recorded in the history store
type HistoryUpdatedEvent struct {
	Namespace string
	Query     string
}

func (e HistoryUpdatedEvent) Type() EventType { return EventHistoryUpdated }

// ResultOpenedEvent is emitted when a selected result's URL is opened
type ResultOpenedEvent struct {
	URL string
}

func (e ResultOpenedEvent) Type() EventType { return EventResultOpened }

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
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
