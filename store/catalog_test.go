package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftfix/booking-app/models"
	"github.com/swiftfix/booking-app/utils"
)

func TestAddTimeSlotConvertsTo12Hour(t *testing.T) {
	s := New()

	require.NoError(t, s.AddTimeSlot("14:30"))

	var found bool
	for _, slot := range s.TimeSlots() {
		if slot.Time == "02:30 PM" {
			found = true
			assert.True(t, slot.Available)
		}
	}
	assert.True(t, found, "expected 02:30 PM slot")
}

func TestAddTimeSlotEdgeCases(t *testing.T) {
	s := New()

	require.NoError(t, s.AddTimeSlot("00:15"))
	require.NoError(t, s.AddTimeSlot("12:00"))

	slots := s.TimeSlots()
	assert.Equal(t, "12:15 AM", slots[0].Time, "midnight slot sorts first")

	var noon bool
	for _, slot := range slots {
		if slot.Time == "12:00 PM" {
			noon = true
		}
	}
	assert.True(t, noon)

	assert.Error(t, s.AddTimeSlot("25:00"))
	assert.Error(t, s.AddTimeSlot("noonish"))
}

func TestAddTimeSlotKeepsChronologicalOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.AddTimeSlot("12:30"))
	require.NoError(t, s.AddTimeSlot("08:00"))

	slots := s.TimeSlots()
	for i := 1; i < len(slots); i++ {
		assert.LessOrEqual(t,
			utils.SlotMinutes(slots[i-1].Time),
			utils.SlotMinutes(slots[i].Time),
			"slots out of order at %d: %s before %s", i, slots[i-1].Time, slots[i].Time)
	}
}

func TestAddDuplicateTimeSlotIsNoOp(t *testing.T) {
	s := New()
	before := len(s.TimeSlots())

	require.NoError(t, s.AddTimeSlot("09:00")) // seeded as 09:00 AM
	assert.Len(t, s.TimeSlots(), before)
}

func TestUpdateAndDeleteTimeSlot(t *testing.T) {
	s := New()

	s.UpdateTimeSlot("10:00 AM", false)
	for _, slot := range s.TimeSlots() {
		if slot.Time == "10:00 AM" {
			assert.False(t, slot.Available)
		}
	}

	before := len(s.TimeSlots())
	s.DeleteTimeSlot("10:00 AM")
	assert.Len(t, s.TimeSlots(), before-1)

	s.DeleteTimeSlot("not a slot") // no-op
	assert.Len(t, s.TimeSlots(), before-1)
}

func TestBlockDateSetSemantics(t *testing.T) {
	s := New()

	s.BlockDate("2026-12-25")
	s.BlockDate("2026-01-01")
	s.BlockDate("2026-12-25") // duplicate

	assert.Equal(t, []string{"2026-01-01", "2026-12-25"}, s.BlockedDates())
	assert.True(t, s.IsDateBlocked("2026-12-25"))
	assert.False(t, s.IsDateBlocked("2026-12-26"))

	s.UnblockDate("2026-12-25")
	assert.False(t, s.IsDateBlocked("2026-12-25"))
	assert.Equal(t, []string{"2026-01-01"}, s.BlockedDates())
}

func TestUpdateServiceUnknownIDIsNoOp(t *testing.T) {
	s := New()
	before := s.Services()

	s.UpdateService(models.RepairIssue{ID: "missing", Name: "Ghost"})
	assert.Equal(t, before, s.Services())

	svc, ok := s.ServiceByID("screen")
	require.True(t, ok)
	svc.PriceRange = "₱4,000 - ₱13,000"
	s.UpdateService(svc)

	got, ok := s.ServiceByID("screen")
	require.True(t, ok)
	assert.Equal(t, "₱4,000 - ₱13,000", got.PriceRange)
}

func TestModelsForBrand(t *testing.T) {
	s := New()

	apple := s.ModelsForBrand(models.BrandApple)
	assert.NotEmpty(t, apple)
	for _, m := range apple {
		assert.Equal(t, models.BrandApple, m.Brand)
	}

	assert.Empty(t, s.ModelsForBrand(models.Brand("Nokia")))
}
