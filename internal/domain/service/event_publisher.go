package service

import (
	"context"
	"time"
)

// PharmacyDutyEvent is emitted when a pharmacy goes on duty
type PharmacyDutyEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ActorID    string    `json:"actor_id,omitempty"`   // User who put the pharmacy on duty
	EventID    string    `json:"event_id"`
	PharmacyID string    `json:"pharmacy_id"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	IsOnGard   bool      `json:"is_on_gard"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPharmacyDutyEvent publishes a duty change for downstream consumers
	PublishPharmacyDutyEvent(ctx context.Context, event *PharmacyDutyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
