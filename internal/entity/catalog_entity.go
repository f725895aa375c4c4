package entity

import (
	"time"

	"github.com/google/uuid"
)

// GreenAction is a catalog entry describing a known eco activity.
// Reference data, rarely mutated.
type GreenAction struct {
	Id            uuid.UUID
	Title         string
	Slug          string
	Category      ActivityCategory
	PointsPerUnit int
	CO2PerUnit    float64
	WaterPerUnit  float64
	Unit          string
	Icon          string
	IsActive      bool
	CreatedAt     time.Time
}

// Badge is a static catalog entry. FirstStepsSlug is granted at
// registration; the rest are points-threshold awards.
type Badge struct {
	Id             uuid.UUID
	Name           string
	Slug           string
	Description    string
	Icon           string
	PointsRequired int
	Category       string
	CreatedAt      time.Time
}

const FirstStepsSlug = "first_steps"

// UserBadge links a user to an earned badge. At most one row per
// (user, badge) pair.
type UserBadge struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	BadgeId  uuid.UUID
	EarnedAt time.Time
}
