package usecase

import (
	"fmt"
	"log/slog"

	"github.com/dalligo/delivery-service/internal/infrastructure/kafka"
)

// DeleteReview soft-removes the review and takes its star back out of the
// store aggregate (count-1, sum-star), atomically.
func (uc *DefaultReviewUsecase) DeleteReview(reviewID, username string) error {
	user, err := uc.UserRepo.GetActiveByUsername(username)
	if err != nil {
		return err
	}

	tx, err := uc.ReviewRepo.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	var committed bool
	defer func() {
		if !committed {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				slog.Error("failed to rollback review transaction", "review_id", reviewID, "error", rollbackErr)
			}
		}
	}()

	review, err := tx.GetReviewForUpdate(reviewID, user.ID)
	if err != nil {
		return err
	}

	if err := tx.MarkReviewRemoved(review.ID, user.ID, username); err != nil {
		uc.recordReviewError("persistence")
		return err
	}

	if err := tx.ApplyRatingDelta(review.StoreID, -int64(review.Star), -1); err != nil {
		uc.recordReviewError("aggregate")
		return err
	}

	if err := tx.Commit(); err != nil {
		uc.recordReviewError("commit")
		return fmt.Errorf("failed to commit review transaction: %w", err)
	}
	committed = true

	if uc.Metrics != nil {
		uc.Metrics.RecordReviewDeleted(review.StoreID)
	}

	uc.publishReviewEvent(kafka.ReviewEvent{
		ReviewID: review.ID,
		OrderID:  review.OrderID,
		StoreID:  review.StoreID,
		UserID:   review.UserID,
		Star:     review.Star,
		Action:   "deleted",
	})

	return nil
}
