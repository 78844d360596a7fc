package domain

import "ionautocomplete/internal/autocomplete"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOverlayOpened    EventType = "OverlayOpened"
	EventOverlayClosed    EventType = "OverlayClosed"
	EventSelectionChanged EventType = "SelectionChanged"
	EventLookupFailed     EventType = "LookupFailed"
	EventConfigLoaded     EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OverlayOpenedEvent is emitted when the search overlay becomes visible
type OverlayOpenedEvent struct {
	Field string
}

func (e OverlayOpenedEvent) Type() EventType { return EventOverlayOpened }

// OverlayClosedEvent is emitted when the search overlay is hidden
type OverlayClosedEvent struct {
	Field string
}

func (e OverlayClosedEvent) Type() EventType { return EventOverlayClosed }

// SelectionChangedEvent is emitted after a value is committed to the bound model
type SelectionChangedEvent struct {
	Field string
	Value any // a slice in multi-select mode
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// LookupFailedEvent is emitted when an asynchronous lookup rejects
type LookupFailedEvent struct {
	Field string
	Query string
	Err   error
}

func (e LookupFailedEvent) Type() EventType { return EventLookupFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path      string
	Field     autocomplete.FieldConfig
	ItemCount int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
