package models

type Brand string

const (
	BrandApple   Brand = "Apple"
	BrandSamsung Brand = "Samsung"
	BrandGoogle  Brand = "Google"
	BrandOther   Brand = "Other"
)

func (b Brand) Valid() bool {
	switch b {
	case BrandApple, BrandSamsung, BrandGoogle, BrandOther:
		return true
	}
	return false
}

// DeviceModel is read-only reference data; it is never created or
// mutated at runtime.
type DeviceModel struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand Brand  `json:"brand"`
}

type IconName string

const (
	IconScreen   IconName = "screen"
	IconBattery  IconName = "battery"
	IconWater    IconName = "water"
	IconCamera   IconName = "camera"
	IconCharging IconName = "charging"
	IconOther    IconName = "other"
)

// RepairIssue is a service catalog entry. PriceRange and Duration are
// free-form display strings; the id is stable for the life of the entry.
type RepairIssue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PriceRange  string   `json:"priceRange"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	IconName    IconName `json:"iconName"`
}

// TimeSlot is keyed by its 12-hour display time ("hh:mm AM/PM").
// Availability is global, not tracked per appointment date.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
