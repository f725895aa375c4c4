package dto

import "github.com/google/uuid"

type GreenActionResponse struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Category      string    `json:"category"`
	PointsPerUnit int       `json:"points_per_unit"`
	CO2PerUnit    float64   `json:"co2_per_unit"`
	WaterPerUnit  float64   `json:"water_per_unit"`
	Unit          string    `json:"unit"`
	Icon          string    `json:"icon"`
}

type ListGreenActionsResponse struct {
	Actions []GreenActionResponse `json:"actions"`
}
