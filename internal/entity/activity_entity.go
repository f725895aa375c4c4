package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityCategory string

const (
	CategoryTransport   ActivityCategory = "transport"
	CategoryElectricity ActivityCategory = "electricity"
	CategoryRecycling   ActivityCategory = "recycling"
	CategoryWater       ActivityCategory = "water"
	CategoryFood        ActivityCategory = "food"
	CategoryOther       ActivityCategory = "other"
)

// UserActivity is one logged green activity. Impact fields are computed
// exactly once before first persistence and never recomputed.
type UserActivity struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	GreenActionId   *uuid.UUID
	ActivityType    string
	ActivitySubtype string
	ActivityName    string
	Quantity        float64
	Unit            string
	Notes           string
	ActivityDate    time.Time
	PointsEarned    int
	CO2Saved        float64
	WaterSaved      float64
	CreatedAt       time.Time
}
