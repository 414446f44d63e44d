package store

import "github.com/swiftfix/booking-app/models"

// AppendBooking inserts a booking at the head of the ledger, so
// iteration order is always newest first. Ids are not checked for
// uniqueness here; generation-time randomness is all there is.
func (s *Store) AppendBooking(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append([]models.Booking{b}, s.bookings...)
}

// Bookings returns a snapshot of the ledger, newest first.
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// UpdateBookingStatus replaces the status of the booking with the given
// id. Any status value is accepted for any booking; transition rules
// are a concern of the dashboard, not the ledger. An unknown id is a
// silent no-op.
func (s *Store) UpdateBookingStatus(id string, status models.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return
		}
	}
}
