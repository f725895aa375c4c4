package impact

import "math"

// Impact is the computed environmental effect of a single activity.
type Impact struct {
	CO2Saved     float64 // kg, rounded to 3 decimals
	WaterSaved   float64 // liters, rounded to 2 decimals
	PointsEarned int
}

// Calculate maps an activity subtype and a positive quantity to its impact.
// Unknown subtypes fall back to the default factors instead of erroring.
func Calculate(subtype string, quantity float64) Impact {
	co2 := defaultCO2Factor
	if f, ok := co2Factors[subtype]; ok {
		co2 = f
	}
	water := defaultWaterFactor
	if f, ok := waterFactors[subtype]; ok {
		water = f
	}
	points := defaultPointsFactor
	if f, ok := pointsFactors[subtype]; ok {
		points = f
	}

	return Impact{
		CO2Saved:     roundTo(quantity*co2, 3),
		WaterSaved:   roundTo(quantity*water, 2),
		PointsEarned: int(math.Floor(quantity * points)),
	}
}

// Known reports whether a subtype has an explicit factor entry.
func Known(subtype string) bool {
	_, ok := pointsFactors[subtype]
	return ok
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
