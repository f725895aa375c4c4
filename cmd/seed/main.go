package main

import (
	"log"
	"os"

	"leafit-be/internal/model"
	"leafit-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🌱 Seeding LeafIt catalog data\n")

	seedBadges(db)
	seedGreenActions(db)

	color.Cyan("\nSeeding completed!")
}

func seedBadges(db *gorm.DB) {
	color.Yellow("\n[1/2] Badge catalog")

	badges := []model.Badge{
		{Name: "First Steps", Slug: "first_steps", Description: "Welcome to LeafIt! You've taken your first step towards a greener future.", Icon: "🌱", PointsRequired: 0, Category: "milestone"},
		{Name: "Week Warrior", Slug: "week_warrior", Description: "Maintained a 7-day streak of eco-friendly activities!", Icon: "🔥", PointsRequired: 100, Category: "streak"},
		{Name: "Plant Parent", Slug: "plant_parent", Description: "Logged 5 plant-based meal activities.", Icon: "🌿", PointsRequired: 150, Category: "activity"},
		{Name: "Recycling Pro", Slug: "recycler", Description: "Logged 10 recycling activities. Keep up the great work!", Icon: "♻️", PointsRequired: 200, Category: "activity"},
		{Name: "Water Guardian", Slug: "water_guardian", Description: "Completed 20 water-saving activities.", Icon: "💧", PointsRequired: 250, Category: "activity"},
		{Name: "Energy Saver", Slug: "energy_saver", Description: "Saved over 50kg of CO₂ through energy-saving activities.", Icon: "💡", PointsRequired: 300, Category: "milestone"},
		{Name: "Green Commuter", Slug: "green_commuter", Description: "Chose eco-friendly transport 15 times.", Icon: "🚲", PointsRequired: 350, Category: "activity"},
		{Name: "Month Master", Slug: "month_master", Description: "Maintained a 30-day streak! Incredible dedication!", Icon: "⭐", PointsRequired: 500, Category: "streak"},
		{Name: "Climate Hero", Slug: "climate_hero", Description: "Saved over 100kg of CO₂. You're a climate hero!", Icon: "🌍", PointsRequired: 750, Category: "milestone"},
		{Name: "Eco Champion", Slug: "eco_champion", Description: "Reached 1000 eco points! You're making a real difference.", Icon: "🏆", PointsRequired: 1000, Category: "milestone"},
	}

	for _, b := range badges {
		var existing model.Badge
		if err := db.Where("slug = ?", b.Slug).First(&existing).Error; err == nil {
			log.Printf("Badge '%s' already exists, skipping...", b.Slug)
			continue
		}
		if err := db.Create(&b).Error; err != nil {
			color.Red("Failed to create badge '%s': %v", b.Slug, err)
		} else {
			color.Green("Created badge: %s (%s)", b.Name, b.Slug)
		}
	}
}

func seedGreenActions(db *gorm.DB) {
	color.Yellow("\n[2/2] Green action catalog")

	// Slugs double as the impact calculator subtypes; per-unit numbers
	// here mirror the calculator tables so the catalog stays honest.
	actions := []model.GreenAction{
		// Transport
		{Title: "Use Public Transport", Slug: "public_transport", Category: "transport", PointsPerUnit: 15, CO2PerUnit: 0.14, Unit: "km", Icon: "🚌", IsActive: true},
		{Title: "Bike Instead of Drive", Slug: "cycling", Category: "transport", PointsPerUnit: 20, CO2PerUnit: 0.21, Unit: "km", Icon: "🚲", IsActive: true},
		{Title: "Walk Instead of Drive", Slug: "walking", Category: "transport", PointsPerUnit: 20, CO2PerUnit: 0.21, Unit: "km", Icon: "🚶", IsActive: true},
		{Title: "Carpool", Slug: "carpooling", Category: "transport", PointsPerUnit: 10, CO2PerUnit: 0.08, Unit: "km", Icon: "🚗", IsActive: true},
		{Title: "Drive Electric", Slug: "electric_vehicle", Category: "transport", PointsPerUnit: 12, CO2PerUnit: 0.10, Unit: "km", Icon: "🔋", IsActive: true},

		// Electricity
		{Title: "Switch to LED Lights", Slug: "led_lights", Category: "electricity", PointsPerUnit: 5, CO2PerUnit: 0.04, Unit: "hours", Icon: "💡", IsActive: true},
		{Title: "Unplug Devices", Slug: "unplug_devices", Category: "electricity", PointsPerUnit: 3, CO2PerUnit: 0.02, Unit: "hours", Icon: "🔌", IsActive: true},
		{Title: "Reduce AC Usage", Slug: "ac_reduction", Category: "electricity", PointsPerUnit: 15, CO2PerUnit: 0.15, Unit: "hours", Icon: "❄️", IsActive: true},
		{Title: "Use Solar Energy", Slug: "solar_energy", Category: "electricity", PointsPerUnit: 50, CO2PerUnit: 0.50, Unit: "kWh", Icon: "☀️", IsActive: true},
		{Title: "Use Natural Light", Slug: "natural_light", Category: "electricity", PointsPerUnit: 8, CO2PerUnit: 0.06, Unit: "hours", Icon: "🌤️", IsActive: true},

		// Recycling
		{Title: "Recycle Plastic", Slug: "plastic_recycling", Category: "recycling", PointsPerUnit: 25, CO2PerUnit: 0.50, Unit: "kg", Icon: "🥤", IsActive: true},
		{Title: "Recycle Paper", Slug: "paper_recycling", Category: "recycling", PointsPerUnit: 30, CO2PerUnit: 1.00, Unit: "kg", Icon: "📄", IsActive: true},
		{Title: "Compost Food Scraps", Slug: "composting", Category: "recycling", PointsPerUnit: 20, CO2PerUnit: 0.30, Unit: "kg", Icon: "🍂", IsActive: true},
		{Title: "Use Reusable Bags", Slug: "reusable_bags", Category: "recycling", PointsPerUnit: 10, CO2PerUnit: 0.10, Unit: "uses", Icon: "👜", IsActive: true},
		{Title: "Choose Less Packaging", Slug: "reduced_packaging", Category: "recycling", PointsPerUnit: 15, CO2PerUnit: 0.20, Unit: "items", Icon: "📦", IsActive: true},

		// Water
		{Title: "Shorter Shower", Slug: "shorter_shower", Category: "water", PointsPerUnit: 10, CO2PerUnit: 0.01, WaterPerUnit: 10, Unit: "minutes saved", Icon: "🚿", IsActive: true},
		{Title: "Fix Leaks", Slug: "fix_leaks", Category: "water", PointsPerUnit: 25, CO2PerUnit: 0.02, WaterPerUnit: 20, Unit: "leaks", Icon: "🔧", IsActive: true},
		{Title: "Collect Rainwater", Slug: "rainwater", Category: "water", PointsPerUnit: 15, CO2PerUnit: 0.01, WaterPerUnit: 1, Unit: "liters", Icon: "🌧️", IsActive: true},
		{Title: "Run Full Laundry Loads", Slug: "efficient_washing", Category: "water", PointsPerUnit: 20, CO2PerUnit: 0.05, WaterPerUnit: 50, Unit: "loads", Icon: "👕", IsActive: true},
		{Title: "Turn Off the Tap", Slug: "turned_off_tap", Category: "water", PointsPerUnit: 5, CO2PerUnit: 0.005, WaterPerUnit: 12, Unit: "times", Icon: "🚰", IsActive: true},

		// Food
		{Title: "Plant-Based Meal", Slug: "plant_based_meal", Category: "food", PointsPerUnit: 30, CO2PerUnit: 2.50, Unit: "meals", Icon: "🥗", IsActive: true},
		{Title: "Buy Local Food", Slug: "local_food", Category: "food", PointsPerUnit: 20, CO2PerUnit: 0.50, Unit: "purchases", Icon: "🥕", IsActive: true},
		{Title: "Zero Food Waste Day", Slug: "no_food_waste", Category: "food", PointsPerUnit: 25, CO2PerUnit: 0.70, Unit: "days", Icon: "🍽️", IsActive: true},
		{Title: "Grow Your Own Food", Slug: "homegrown", Category: "food", PointsPerUnit: 35, CO2PerUnit: 1.00, Unit: "harvests", Icon: "🌱", IsActive: true},
		{Title: "Eat Seasonal Produce", Slug: "seasonal_food", Category: "food", PointsPerUnit: 15, CO2PerUnit: 0.30, Unit: "meals", Icon: "🍓", IsActive: true},

		// Other
		{Title: "Plant a Tree", Slug: "tree_planting", Category: "other", PointsPerUnit: 100, CO2PerUnit: 22.0, Unit: "trees", Icon: "🌳", IsActive: true},
		{Title: "Eco-Friendly Driving", Slug: "eco_drive", Category: "other", PointsPerUnit: 40, CO2PerUnit: 0.50, Unit: "trips", Icon: "🛞", IsActive: true},
		{Title: "Spread Awareness", Slug: "awareness", Category: "other", PointsPerUnit: 30, CO2PerUnit: 0.10, Unit: "actions", Icon: "📣", IsActive: true},
		{Title: "Join a Cleanup", Slug: "cleanup", Category: "other", PointsPerUnit: 50, CO2PerUnit: 0.20, Unit: "events", Icon: "🧹", IsActive: true},
		{Title: "Donate to Green Causes", Slug: "donation", Category: "other", PointsPerUnit: 25, CO2PerUnit: 0.50, Unit: "donations", Icon: "💚", IsActive: true},
	}

	for _, a := range actions {
		var existing model.GreenAction
		if err := db.Where("slug = ?", a.Slug).First(&existing).Error; err == nil {
			log.Printf("Action '%s' already exists, skipping...", a.Slug)
			continue
		}
		if err := db.Create(&a).Error; err != nil {
			color.Red("Failed to create action '%s': %v", a.Slug, err)
		} else {
			color.Green("Created action: %s (%s)", a.Title, a.Slug)
		}
	}
}
