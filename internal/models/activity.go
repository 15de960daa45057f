package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity event types published to Kafka.
const (
	ActivityFollowed   = "user_followed"
	ActivityUnfollowed = "user_unfollowed"
	ActivityBookLogged = "book_logged"
)

// ActivityEvent describes a social action for downstream consumers
// (feeds, notifications). Subject is the followee username or the
// external book id, depending on Type.
type ActivityEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
}
