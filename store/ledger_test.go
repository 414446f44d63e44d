package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftfix/booking-app/models"
)

func TestAppendBookingInsertsAtHead(t *testing.T) {
	s := New()

	s.AppendBooking(models.Booking{ID: "BK-1111", Status: models.StatusPending})
	s.AppendBooking(models.Booking{ID: "BK-2222", Status: models.StatusPending})

	bookings := s.Bookings()
	require.Len(t, bookings, 2)
	assert.Equal(t, "BK-2222", bookings[0].ID, "newest booking first")
	assert.Equal(t, "BK-1111", bookings[1].ID)
}

func TestUpdateBookingStatus(t *testing.T) {
	s := New()
	s.AppendBooking(models.Booking{ID: "BK-1111", Status: models.StatusPending})

	s.UpdateBookingStatus("BK-1111", models.StatusCompleted)
	assert.Equal(t, models.StatusCompleted, s.Bookings()[0].Status)

	// any transition is allowed, including reopening a completed job
	s.UpdateBookingStatus("BK-1111", models.StatusPending)
	assert.Equal(t, models.StatusPending, s.Bookings()[0].Status)

	// unknown id is a silent no-op
	s.UpdateBookingStatus("BK-9999", models.StatusCancelled)
	require.Len(t, s.Bookings(), 1)
	assert.Equal(t, models.StatusPending, s.Bookings()[0].Status)
}

func TestBookingsReturnsSnapshot(t *testing.T) {
	s := New()
	s.AppendBooking(models.Booking{ID: "BK-1111", Status: models.StatusPending})

	snap := s.Bookings()
	snap[0].Status = models.StatusCancelled

	assert.Equal(t, models.StatusPending, s.Bookings()[0].Status)
}

func TestAddReviewPrepends(t *testing.T) {
	s := New()
	before := len(s.Reviews())

	r := s.AddReview("Jane Doe", 5, "Fast and friendly.")
	assert.Equal(t, "Just now", r.Date)
	assert.NotZero(t, r.ID)

	reviews := s.Reviews()
	require.Len(t, reviews, before+1)
	assert.Equal(t, "Jane Doe", reviews[0].Name)
}
