package store

import "github.com/swiftfix/booking-app/models"

// Brands in the order the booking flow presents them.
var Brands = []models.Brand{
	models.BrandApple,
	models.BrandSamsung,
	models.BrandGoogle,
	models.BrandOther,
}

var deviceModels = map[models.Brand][]models.DeviceModel{
	models.BrandApple: {
		{ID: "ip15pm", Name: "iPhone 15 Pro Max", Brand: models.BrandApple},
		{ID: "ip15p", Name: "iPhone 15 Pro", Brand: models.BrandApple},
		{ID: "ip15", Name: "iPhone 15", Brand: models.BrandApple},
		{ID: "ip14pm", Name: "iPhone 14 Pro Max", Brand: models.BrandApple},
		{ID: "ip14", Name: "iPhone 14", Brand: models.BrandApple},
		{ID: "ip13", Name: "iPhone 13", Brand: models.BrandApple},
	},
	models.BrandSamsung: {
		{ID: "s24u", Name: "Galaxy S24 Ultra", Brand: models.BrandSamsung},
		{ID: "s24", Name: "Galaxy S24", Brand: models.BrandSamsung},
		{ID: "s23u", Name: "Galaxy S23 Ultra", Brand: models.BrandSamsung},
		{ID: "zfold5", Name: "Galaxy Z Fold 5", Brand: models.BrandSamsung},
	},
	models.BrandGoogle: {
		{ID: "p8p", Name: "Pixel 8 Pro", Brand: models.BrandGoogle},
		{ID: "p8", Name: "Pixel 8", Brand: models.BrandGoogle},
		{ID: "p7a", Name: "Pixel 7a", Brand: models.BrandGoogle},
	},
	models.BrandOther: {
		{ID: "generic", Name: "Generic / Other Model", Brand: models.BrandOther},
	},
}

func seedServices() []models.RepairIssue {
	return []models.RepairIssue{
		{
			ID:          "screen",
			Name:        "Screen Replacement",
			PriceRange:  "₱3,500 - ₱12,000",
			Duration:    "45 mins",
			Description: "Cracked glass, dead pixels, or touch issues.",
			IconName:    models.IconScreen,
		},
		{
			ID:          "battery",
			Name:        "Battery Replacement",
			PriceRange:  "₱1,500 - ₱4,000",
			Duration:    "30 mins",
			Description: "Draining fast, not charging, or unexpected shutdowns.",
			IconName:    models.IconBattery,
		},
		{
			ID:          "port",
			Name:        "Charging Port Repair",
			PriceRange:  "₱1,200 - ₱2,500",
			Duration:    "45 mins",
			Description: "Device not charging or cable fits loosely.",
			IconName:    models.IconCharging,
		},
		{
			ID:          "camera",
			Name:        "Camera Repair",
			PriceRange:  "₱2,500 - ₱6,000",
			Duration:    "60 mins",
			Description: "Blurry photos, cracked lens, or black screen.",
			IconName:    models.IconCamera,
		},
		{
			ID:          "water",
			Name:        "Water Damage",
			PriceRange:  "₱1,000 Diagnostic",
			Duration:    "24-48 hours",
			Description: "Deep cleaning and corrosion removal.",
			IconName:    models.IconWater,
		},
		{
			ID:          "diagnosis",
			Name:        "General Diagnosis",
			PriceRange:  "Free",
			Duration:    "15 mins",
			Description: "Not sure what is wrong? We will check it out.",
			IconName:    models.IconOther,
		},
	}
}

func seedTimeSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{Time: "09:00 AM", Available: true},
		{Time: "10:00 AM", Available: true},
		{Time: "11:00 AM", Available: true},
		{Time: "01:00 PM", Available: true},
		{Time: "02:00 PM", Available: true},
		{Time: "03:00 PM", Available: true},
		{Time: "04:00 PM", Available: true},
	}
}

func seedReviews() []models.Review {
	return []models.Review{
		{
			ID:     1,
			Name:   "Sarah Jenkins",
			Rating: 5,
			Text:   "Fixed my shattered iPhone 14 Pro Max screen in less than an hour. Looks brand new! Highly recommended.",
			Date:   "2 days ago",
		},
		{
			ID:     2,
			Name:   "Mike Ross",
			Rating: 5,
			Text:   "I thought my Pixel was a goner after dropping it in water. They managed to save it and the data. Lifesavers!",
			Date:   "1 week ago",
		},
		{
			ID:     3,
			Name:   "Emily Chen",
			Rating: 4,
			Text:   "Great service and friendly staff. Battery replacement was quick. Price was fair compared to Apple store.",
			Date:   "3 weeks ago",
		},
	}
}
