package domain

import "time"

// Store carries the running rating aggregate. ReviewCount and RatingSum
// are maintained by signed deltas only, never by rescanning reviews.
type Store struct {
	ID          string
	Name        string
	Category    string
	Address     string
	OwnerID     string
	ReviewCount int64
	RatingSum   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RemovedAt   *time.Time
	RemovedBy   string
}

func (s *Store) RatingAverage() float64 {
	if s.ReviewCount == 0 {
		return 0
	}
	return float64(s.RatingSum) / float64(s.ReviewCount)
}
