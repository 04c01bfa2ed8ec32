package events

import "time"

// Event defines the contract for all gateway events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ORDER_DISPATCHED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewOrderDispatched records one best-effort order broadcast to the device
// fleet, for the audit log only. It carries no delivery guarantee.
func NewOrderDispatched(productId string, category, attempted, delivered int) BaseEvent {
	return BaseEvent{
		Type: "ORDER_DISPATCHED",
		Data: map[string]interface{}{
			"product_id": productId,
			"category":   category,
			"attempted":  attempted,
			"delivered":  delivered,
		},
		OccurredAt: time.Now(),
	}
}
