package contract

import (
	"context"

	"leafit-be/internal/entity"
	"leafit-be/internal/repository/specification"

	"github.com/google/uuid"
)

// CategoryStat is one row of a per-category activity breakdown.
type CategoryStat struct {
	Category   string  `gorm:"column:category" json:"category"`
	Count      int64   `gorm:"column:count" json:"count"`
	Points     int64   `gorm:"column:points" json:"points"`
	CO2Saved   float64 `gorm:"column:co2_saved" json:"co2_saved"`
	WaterSaved float64 `gorm:"column:water_saved" json:"water_saved"`
}

// GlobalTotals aggregates every logged activity in the system.
type GlobalTotals struct {
	Activities  int64   `gorm:"column:activities" json:"activities"`
	TotalPoints int64   `gorm:"column:total_points" json:"total_points"`
	TotalCO2    float64 `gorm:"column:total_co2" json:"total_co2_saved"`
	TotalWater  float64 `gorm:"column:total_water" json:"total_water_saved"`
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.UserActivity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserActivity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CategoryBreakdown(ctx context.Context, userId uuid.UUID) ([]CategoryStat, error)
	Totals(ctx context.Context) (*GlobalTotals, error)
}
