package store

import (
	"sort"

	"github.com/swiftfix/booking-app/models"
	"github.com/swiftfix/booking-app/utils"
)

// Services returns a snapshot of the service catalog.
func (s *Store) Services() []models.RepairIssue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RepairIssue, len(s.services))
	copy(out, s.services)
	return out
}

// ServiceByID looks a service up by id.
func (s *Store) ServiceByID(id string) (models.RepairIssue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.RepairIssue{}, false
}

// UpdateService replaces the catalog entry whose id matches. An unknown
// id is a silent no-op; callers cannot tell "not found" from "applied".
func (s *Store) UpdateService(updated models.RepairIssue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == updated.ID {
			s.services[i] = updated
			return
		}
	}
}

// TimeSlots returns a snapshot of all slots, in chronological order.
func (s *Store) TimeSlots() []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TimeSlot, len(s.timeSlots))
	copy(out, s.timeSlots)
	return out
}

// UpdateTimeSlot toggles availability for the slot with the given
// display time. Unknown times are a silent no-op.
func (s *Store) UpdateTimeSlot(time string, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, slot := range s.timeSlots {
		if slot.Time == time {
			s.timeSlots[i].Available = available
			return
		}
	}
}

// AddTimeSlot converts a 24-hour "HH:MM" input to its 12-hour display
// form and inserts it, keeping the collection sorted by time of day.
// A duplicate display time is rejected as a no-op.
func (s *Store) AddTimeSlot(raw string) error {
	display, err := utils.To12Hour(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range s.timeSlots {
		if slot.Time == display {
			return nil
		}
	}

	s.timeSlots = append(s.timeSlots, models.TimeSlot{Time: display, Available: true})
	sort.SliceStable(s.timeSlots, func(i, j int) bool {
		return utils.SlotMinutes(s.timeSlots[i].Time) < utils.SlotMinutes(s.timeSlots[j].Time)
	})
	return nil
}

// DeleteTimeSlot removes the slot with an exact display-time match.
func (s *Store) DeleteTimeSlot(time string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, slot := range s.timeSlots {
		if slot.Time == time {
			s.timeSlots = append(s.timeSlots[:i], s.timeSlots[i+1:]...)
			return
		}
	}
}

// BlockedDates returns a snapshot of the blocked-date set, ascending.
func (s *Store) BlockedDates() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.blockedDates))
	copy(out, s.blockedDates)
	return out
}

// IsDateBlocked reports whether an ISO date may not be booked.
func (s *Store) IsDateBlocked(date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.blockedDates {
		if d == date {
			return true
		}
	}
	return false
}

// BlockDate adds an ISO "YYYY-MM-DD" date to the blocked set. Adding a
// date already present is a no-op; the set stays sorted ascending.
func (s *Store) BlockDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.blockedDates {
		if d == date {
			return
		}
	}
	s.blockedDates = append(s.blockedDates, date)
	sort.Strings(s.blockedDates)
}

// UnblockDate removes a date from the blocked set.
func (s *Store) UnblockDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.blockedDates {
		if d == date {
			s.blockedDates = append(s.blockedDates[:i], s.blockedDates[i+1:]...)
			return
		}
	}
}
