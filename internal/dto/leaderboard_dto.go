package dto

import "github.com/google/uuid"

type LeaderboardEntry struct {
	Rank            int       `json:"rank"`
	UserId          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	TotalPoints     int       `json:"total_points"`
	TotalCO2Saved   float64   `json:"total_co2_saved"`
	ActivitiesCount int       `json:"activities_count"`
	CurrentStreak   int       `json:"current_streak"`
}

type LeaderboardResponse struct {
	SortedBy string             `json:"sorted_by"`
	Entries  []LeaderboardEntry `json:"entries"`
}

type GlobalStatsResponse struct {
	TotalUsers      int64   `json:"total_users"`
	TotalActivities int64   `json:"total_activities"`
	TotalPoints     int64   `json:"total_points"`
	TotalCO2Saved   float64 `json:"total_co2_saved"`
	TotalWaterSaved float64 `json:"total_water_saved"`
}
