package usecase

import (
	"fmt"
	"log/slog"

	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/kafka"
	reviewdto "github.com/dalligo/delivery-service/internal/usecase/dto/review"
)

// UpdateReview overwrites star and comment and applies newStar-oldStar to
// the store rating sum. The old star is read under a row lock inside the
// same transaction, so concurrent edits of one review cannot lose a delta.
func (uc *DefaultReviewUsecase) UpdateReview(input *reviewdto.UpdateReviewInput) (*reviewdto.ReviewOutput, error) {
	if !validStar(input.Star) {
		uc.recordReviewError("invalid_star")
		return nil, domain.ErrInvalidStar
	}

	user, err := uc.UserRepo.GetActiveByUsername(input.Username)
	if err != nil {
		return nil, err
	}

	tx, err := uc.ReviewRepo.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	var committed bool
	defer func() {
		if !committed {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				slog.Error("failed to rollback review transaction", "review_id", input.ReviewID, "error", rollbackErr)
			}
		}
	}()

	review, err := tx.GetReviewForUpdate(input.ReviewID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.UpdateReviewContent(review.ID, input.Star, input.Comment); err != nil {
		uc.recordReviewError("persistence")
		return nil, err
	}

	delta := int64(input.Star) - int64(review.Star)
	if delta != 0 {
		if err := tx.ApplyRatingDelta(review.StoreID, delta, 0); err != nil {
			uc.recordReviewError("aggregate")
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		uc.recordReviewError("commit")
		return nil, fmt.Errorf("failed to commit review transaction: %w", err)
	}
	committed = true

	review.Star = input.Star
	review.Comment = input.Comment

	if uc.Metrics != nil {
		uc.Metrics.RecordReviewUpdated(review.StoreID)
	}

	uc.publishReviewEvent(kafka.ReviewEvent{
		ReviewID: review.ID,
		OrderID:  review.OrderID,
		StoreID:  review.StoreID,
		UserID:   review.UserID,
		Star:     review.Star,
		Action:   "updated",
	})

	return reviewdto.ToReviewOutput(review), nil
}
