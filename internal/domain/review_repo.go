package domain

// StoreRatingPort is the only way the review side touches a store: a signed
// increment of the rating aggregate, applied atomically on the store row.
type StoreRatingPort interface {
	ApplyRatingDelta(storeID string, starDelta, countDelta int64) error
}

// ReviewTx is the transaction scope for a review mutation paired with its
// store aggregate delta.
type ReviewTx interface {
	StoreRatingPort

	GetOrderOwnedBy(orderID, userID string) (*Order, error)
	// GetReviewForUpdate reads the caller's review under a row lock; the
	// update delta is computed from this persisted value, so concurrent
	// edits of one review serialize instead of losing updates.
	GetReviewForUpdate(reviewID, userID string) (*Review, error)
	CreateReview(review *Review) error
	UpdateReviewContent(reviewID string, star int32, comment string) error
	MarkReviewRemoved(reviewID, userID, actor string) error
	Commit() error
	Rollback() error
}

type ReviewRepository interface {
	BeginTx() (ReviewTx, error)
	GetReviewsByUserID(userID string, page, limit int32) ([]*Review, int64, error)
	// SearchStoreReviews filters by an optional star set: a nil or empty
	// slice means no star filtering. Ordered by star ASC, created_at ASC.
	SearchStoreReviews(storeID string, stars []int32, page, limit int32) ([]*Review, int64, error)
}
