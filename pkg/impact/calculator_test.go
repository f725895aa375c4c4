package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		subtype    string
		quantity   float64
		wantCO2    float64
		wantWater  float64
		wantPoints int
	}{
		{
			name:       "cycling per km",
			subtype:    "cycling",
			quantity:   10,
			wantCO2:    2.1,
			wantWater:  0,
			wantPoints: 200,
		},
		{
			name:       "shorter shower saves water",
			subtype:    "shorter_shower",
			quantity:   3,
			wantCO2:    0.03,
			wantWater:  30,
			wantPoints: 30,
		},
		{
			name:       "plant based meal",
			subtype:    "plant_based_meal",
			quantity:   2,
			wantCO2:    5.0,
			wantWater:  0,
			wantPoints: 60,
		},
		{
			name:       "tree planting",
			subtype:    "tree_planting",
			quantity:   1,
			wantCO2:    22.0,
			wantWater:  0,
			wantPoints: 100,
		},
		{
			name:       "unknown subtype uses defaults",
			subtype:    "underwater_basket_weaving",
			quantity:   5,
			wantCO2:    0.5,
			wantWater:  0,
			wantPoints: 50,
		},
		{
			name:       "fractional quantity floors points",
			subtype:    "turned_off_tap",
			quantity:   2.5,
			wantCO2:    0.013, // 2.5 * 0.005 = 0.0125 rounds to 0.013
			wantWater:  30,
			wantPoints: 12, // floor(2.5 * 5)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.subtype, tt.quantity)
			assert.InDelta(t, tt.wantCO2, got.CO2Saved, 1e-9)
			assert.InDelta(t, tt.wantWater, got.WaterSaved, 1e-9)
			assert.Equal(t, tt.wantPoints, got.PointsEarned)
		})
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("composting"))
	assert.False(t, Known("warp_drive"))
}

func TestFactorTablesAligned(t *testing.T) {
	// Every CO2 subtype must have a points factor; water subtypes are a
	// subset of the CO2 table.
	for k := range co2Factors {
		_, ok := pointsFactors[k]
		assert.True(t, ok, "missing points factor for %s", k)
	}
	for k := range waterFactors {
		_, ok := co2Factors[k]
		assert.True(t, ok, "water factor for unknown subtype %s", k)
	}
}
