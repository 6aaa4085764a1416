package models

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventUserRegistered  EventType = "user.registered"
	EventUserBanned      EventType = "user.banned"
	EventOrderPlaced     EventType = "order.placed"
	EventOrderCancelled  EventType = "order.cancelled"
	EventOrderShipped    EventType = "order.shipped"
	EventOrderCompleted  EventType = "order.completed"
	EventBountyPosted    EventType = "bounty.posted"
	EventBountyAccepted  EventType = "bounty.accepted"
	EventBountyFulfilled EventType = "bounty.fulfilled"
	EventBountyCancelled EventType = "bounty.cancelled"
	EventOfferAccepted   EventType = "offer.accepted"
	EventReviewSubmitted EventType = "review.submitted"
	EventProductDeleted  EventType = "product.deleted"
)

// Event is the wire format published to the marketplace topic.
type Event struct {
	Type       EventType       `json:"type"`
	ActorID    int64           `json:"actor_id"`
	SubjectID  int64           `json:"subject_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type ActivityEntry struct {
	ID         int64           `json:"id"`
	Type       EventType       `json:"type"`
	ActorID    int64           `json:"actor_id"`
	SubjectID  int64           `json:"subject_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
