package usecase

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/kafka"
	reviewdto "github.com/dalligo/delivery-service/internal/usecase/dto/review"
	"github.com/jaevor/go-nanoid"
)

// CreateReview persists the review and bumps the owning store aggregate
// (count+1, sum+star) in one transaction. Only the order's own user may
// review, and only once the order is ORDER_COMPLETE.
func (uc *DefaultReviewUsecase) CreateReview(input *reviewdto.CreateReviewInput) (*reviewdto.ReviewOutput, error) {
	if !validStar(input.Star) {
		uc.recordReviewError("invalid_star")
		return nil, domain.ErrInvalidStar
	}

	user, err := uc.UserRepo.GetActiveByUsername(input.Username)
	if err != nil {
		return nil, err
	}

	idGenerator, err := nanoid.Standard(21)
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
				slog.Error("failed to rollback review transaction", "order_id", input.OrderID, "error", rollbackErr)
			}
		}
	}()

	order, err := tx.GetOrderOwnedBy(input.OrderID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := order.AssertReviewable(); err != nil {
		uc.recordReviewError("order_not_complete")
		return nil, err
	}

	review := &domain.Review{
		ID:        idGenerator(),
		OrderID:   order.ID,
		UserID:    user.ID,
		StoreID:   order.StoreID,
		Star:      input.Star,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := tx.CreateReview(review); err != nil {
		uc.recordReviewError("persistence")
		return nil, err
	}

	if err := tx.ApplyRatingDelta(order.StoreID, int64(review.Star), 1); err != nil {
		uc.recordReviewError("aggregate")
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		uc.recordReviewError("commit")
		return nil, fmt.Errorf("failed to commit review transaction: %w", err)
	}
	committed = true

	if uc.Metrics != nil {
		uc.Metrics.RecordReviewCreated(order.StoreID, strconv.Itoa(int(review.Star)))
	}

	uc.publishReviewEvent(kafka.ReviewEvent{
		ReviewID: review.ID,
		OrderID:  review.OrderID,
		StoreID:  review.StoreID,
		UserID:   review.UserID,
		Star:     review.Star,
		Action:   "created",
	})

	return reviewdto.ToReviewOutput(review), nil
}

func (uc *DefaultReviewUsecase) publishReviewEvent(event kafka.ReviewEvent) {
	go func(event kafka.ReviewEvent) {
		if err := uc.Publisher.PublishReview(event); err != nil {
			slog.Error("failed to publish kafka ReviewEvent", "action", event.Action, "error", err.Error())
		}
	}(event)
}

func (uc *DefaultReviewUsecase) recordReviewError(errorType string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordReviewError(errorType)
}
