package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the kind of change an event describes
type EventType string

const (
	EventTypeCreated   EventType = "created"
	EventTypeUpdated   EventType = "updated"
	EventTypeDeleted   EventType = "deleted"
	EventTypeToggled   EventType = "paid_toggled"
	EventTypeReordered EventType = "reordered"
	EventTypeChanged   EventType = "changed"
	EventTypeImported  EventType = "imported"
	EventTypeReset     EventType = "reset"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeCost    EntityType = "cost"
	EntityTypeCatalog EntityType = "catalog"
	EntityTypeMonth   EntityType = "month"
	EntityTypeFigures EntityType = "figures"
	EntityTypeState   EntityType = "state"
)

// Event is a message pushed to connected clients when state changes, so the
// presentation layer can recompute its view
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "cost.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "cost"
	Payload   interface{} `json:"payload"`   // Entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// CostCreated creates a cost.created event
func CostCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeCost, payload)
}

// CostUpdated creates a cost.updated event
func CostUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeCost, payload)
}

// CostDeleted creates a cost.deleted event
func CostDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeCost, payload)
}

// CostPaidToggled creates a cost.paid_toggled event
func CostPaidToggled(payload interface{}) Event {
	return NewEvent(EventTypeToggled, EntityTypeCost, payload)
}

// CatalogReordered creates a catalog.reordered event
func CatalogReordered(payload interface{}) Event {
	return NewEvent(EventTypeReordered, EntityTypeCatalog, payload)
}

// MonthChanged creates a month.changed event
func MonthChanged(payload interface{}) Event {
	return NewEvent(EventTypeChanged, EntityTypeMonth, payload)
}

// FiguresUpdated creates a figures.updated event for income/savings changes
func FiguresUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeFigures, payload)
}

// StateImported creates a state.imported event
func StateImported(payload interface{}) Event {
	return NewEvent(EventTypeImported, EntityTypeState, payload)
}

// StateReset creates a state.reset event
func StateReset(payload interface{}) Event {
	return NewEvent(EventTypeReset, EntityTypeState, payload)
}
