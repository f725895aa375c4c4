package dto

import "github.com/google/uuid"

// ActivityLoggedMessage is the internal bus payload emitted after an
// activity commits. Consumed by the badge awarder.
type ActivityLoggedMessage struct {
	UserId      uuid.UUID `json:"user_id"`
	ActivityId  uuid.UUID `json:"activity_id"`
	TotalPoints int       `json:"total_points"`
}
