package dto

import (
	"time"

	"github.com/google/uuid"

	"leafit-be/internal/repository/contract"
)

type CreateActivityRequest struct {
	ActivityType    string     `json:"activity_type" validate:"required,oneof=transport electricity recycling water food other"`
	ActivitySubtype string     `json:"activity_subtype" validate:"required,max=100"`
	ActivityName    string     `json:"activity_name" validate:"required,max=200"`
	Quantity        float64    `json:"quantity" validate:"required,gt=0"`
	Unit            string     `json:"unit" validate:"required,max=50"`
	Notes           string     `json:"notes" validate:"omitempty,max=1000"`
	ActivityDate    *time.Time `json:"activity_date" validate:"omitempty"`
}

type ActivityResponse struct {
	Id              uuid.UUID  `json:"id"`
	GreenActionId   *uuid.UUID `json:"green_action_id,omitempty"`
	ActivityType    string     `json:"activity_type"`
	ActivitySubtype string     `json:"activity_subtype"`
	ActivityName    string     `json:"activity_name"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	Notes           string     `json:"notes,omitempty"`
	ActivityDate    time.Time  `json:"activity_date"`
	PointsEarned    int        `json:"points_earned"`
	CO2Saved        float64    `json:"co2_saved"`
	WaterSaved      float64    `json:"water_saved"`
	CreatedAt       time.Time  `json:"created_at"`
}

type UserStatsBlock struct {
	TotalPoints     int        `json:"total_points"`
	TotalCO2Saved   float64    `json:"total_co2_saved"`
	TotalWaterSaved float64    `json:"total_water_saved"`
	ActivitiesCount int        `json:"activities_count"`
	CurrentStreak   int        `json:"current_streak"`
	LongestStreak   int        `json:"longest_streak"`
	LastActivity    *time.Time `json:"last_activity"`
}

// CreateActivityResponse pairs the stored activity with the owner's
// refreshed aggregates so clients can update dashboards without a
// second round trip.
type CreateActivityResponse struct {
	Activity  ActivityResponse `json:"activity"`
	UserStats UserStatsBlock   `json:"user_stats"`
}

type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int64              `json:"total"`
}

type UserStatsResponse struct {
	Stats             UserStatsBlock          `json:"stats"`
	CategoryBreakdown []contract.CategoryStat `json:"category_breakdown"`
	RecentActivities  []ActivityResponse      `json:"recent_activities"`
}
