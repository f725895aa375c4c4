package impact

// Static per-unit coefficients converting an activity quantity into
// estimated savings. Keys are activity subtypes grouped by category.

var co2Factors = map[string]float64{
	// Transport (kg CO2 per km)
	"public_transport": 0.14,
	"cycling":          0.21,
	"walking":          0.21,
	"carpooling":       0.08,
	"electric_vehicle": 0.10,
	// Electricity (kg CO2 per kWh / per hour of use avoided)
	"led_lights":     0.04,
	"unplug_devices": 0.02,
	"ac_reduction":   0.15,
	"solar_energy":   0.50,
	"natural_light":  0.06,
	// Recycling (kg CO2 per kg of material)
	"plastic_recycling": 0.50,
	"paper_recycling":   1.00,
	"composting":        0.30,
	"reusable_bags":     0.10,
	"reduced_packaging": 0.20,
	// Water
	"shorter_shower":    0.01,
	"fix_leaks":         0.02,
	"rainwater":         0.01,
	"efficient_washing": 0.05,
	"turned_off_tap":    0.005,
	// Food (kg CO2 per meal/item)
	"plant_based_meal": 2.50,
	"local_food":       0.50,
	"no_food_waste":    0.70,
	"homegrown":        1.00,
	"seasonal_food":    0.30,
	// Other
	"tree_planting": 22.0,
	"eco_drive":     0.50,
	"awareness":     0.10,
	"cleanup":       0.20,
	"donation":      0.50,
}

// Only water-category subtypes save water directly (liters per unit).
var waterFactors = map[string]float64{
	"shorter_shower":    10.0,
	"fix_leaks":         20.0,
	"rainwater":         1.0,
	"efficient_washing": 50.0,
	"turned_off_tap":    12.0,
}

var pointsFactors = map[string]float64{
	// Transport
	"public_transport": 15,
	"cycling":          20,
	"walking":          20,
	"carpooling":       10,
	"electric_vehicle": 12,
	// Electricity
	"led_lights":     5,
	"unplug_devices": 3,
	"ac_reduction":   15,
	"solar_energy":   50,
	"natural_light":  8,
	// Recycling
	"plastic_recycling": 25,
	"paper_recycling":   30,
	"composting":        20,
	"reusable_bags":     10,
	"reduced_packaging": 15,
	// Water
	"shorter_shower":    10,
	"fix_leaks":         25,
	"rainwater":         15,
	"efficient_washing": 20,
	"turned_off_tap":    5,
	// Food
	"plant_based_meal": 30,
	"local_food":       20,
	"no_food_waste":    25,
	"homegrown":        35,
	"seasonal_food":    15,
	// Other
	"tree_planting": 100,
	"eco_drive":     40,
	"awareness":     30,
	"cleanup":       50,
	"donation":      25,
}

// Defaults applied when a subtype is not in the tables. Unrecognized
// subtypes are accepted rather than rejected.
const (
	defaultCO2Factor    = 0.1
	defaultWaterFactor  = 0.0
	defaultPointsFactor = 10.0
)
