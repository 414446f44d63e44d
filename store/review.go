package store

import (
	"time"

	"github.com/swiftfix/booking-app/models"
)

// AddReview prepends a new review. The id is derived from the creation
// timestamp and the display date reads "Just now".
func (s *Store) AddReview(name string, rating int, text string) models.Review {
	review := models.Review{
		ID:     time.Now().UnixMilli(),
		Name:   name,
		Rating: rating,
		Text:   text,
		Date:   "Just now",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append([]models.Review{review}, s.reviews...)
	return review
}

// Reviews returns a snapshot of all reviews, newest first.
func (s *Store) Reviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}
