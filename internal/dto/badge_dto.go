package dto

import (
	"time"

	"github.com/google/uuid"
)

type BadgeResponse struct {
	Id             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Description    string     `json:"description"`
	Icon           string     `json:"icon"`
	PointsRequired int        `json:"points_required"`
	Category       string     `json:"category"`
	Earned         bool       `json:"earned"`
	EarnedAt       *time.Time `json:"earned_at,omitempty"`
}

type ListBadgesResponse struct {
	Badges      []BadgeResponse `json:"badges"`
	EarnedCount int             `json:"earned_count"`
}
