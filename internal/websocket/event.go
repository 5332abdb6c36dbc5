package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeCreated   EventType = "created"
	EventTypeUpdated   EventType = "updated"
	EventTypeDeleted   EventType = "deleted"
	EventTypeAlert     EventType = "alert"
	EventTypeRecovered EventType = "recovered"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeCategory    EntityType = "category"
	EntityTypeTransaction EntityType = "transaction"
	EntityTypeBudget      EntityType = "budget"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "budget.alert"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "budget"
	Payload   interface{} `json:"payload"`   // Entity or alert data
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

// EntityChanged creates a "<entity>.<created|updated|deleted>" event
func EntityChanged(eventType EventType, entityType EntityType, payload interface{}) Event {
	return NewEvent(eventType, entityType, payload)
}

// BudgetAlert creates a budget.alert event, sent when a budget enters warning or over
func BudgetAlert(payload interface{}) Event {
	return NewEvent(EventTypeAlert, EntityTypeBudget, payload)
}

// BudgetRecovered creates a budget.recovered event, sent when a budget returns to ok
func BudgetRecovered(payload interface{}) Event {
	return NewEvent(EventTypeRecovered, EntityTypeBudget, payload)
}
