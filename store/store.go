package store

import (
	"sync"

	"github.com/swiftfix/booking-app/models"
)

// Store is the application state: the service catalog, time slots,
// blocked dates, the booking ledger and customer reviews. Everything
// lives in memory for the lifetime of the process; there is no
// persistence behind it.
//
// Handlers run concurrently, so mutation is serialized behind an
// RWMutex. That keeps the ledger's newest-first iteration order stable
// under interleaved status updates.
type Store struct {
	mu sync.RWMutex

	services     []models.RepairIssue
	timeSlots    []models.TimeSlot
	blockedDates []string
	bookings     []models.Booking
	reviews      []models.Review
}

// New builds a Store seeded with the shop's initial catalog and reviews.
// The ledger starts empty.
func New() *Store {
	return &Store{
		services:  seedServices(),
		timeSlots: seedTimeSlots(),
		reviews:   seedReviews(),
	}
}

// ModelsForBrand returns the device models offered for a brand. The
// model table is static reference data.
func (s *Store) ModelsForBrand(b models.Brand) []models.DeviceModel {
	out := make([]models.DeviceModel, len(deviceModels[b]))
	copy(out, deviceModels[b])
	return out
}
