// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub provider names accepted in pubsub.provider.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Message attribute keys set on published events.
const (
	AttrEventType  = "event_type"
	AttrPharmacyID = "pharmacy_id"
	AttrRequestID  = "request_id"
	AttrActorID    = "actor_id"
)

// EventTypePharmacyOnDuty identifies a PharmacyDutyEvent.
const EventTypePharmacyOnDuty = "pharmacy.on_duty"
