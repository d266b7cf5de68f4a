package reviewdto

import (
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
)

type ReviewOutput struct {
	ReviewID  string
	OrderID   string
	StoreID   string
	Star      int32
	Comment   string
	CreatedAt time.Time
}

type ReviewPageOutput struct {
	Reviews []*ReviewOutput
	Total   int64
	Page    int32
	Limit   int32
}

func ToReviewOutput(review *domain.Review) *ReviewOutput {
	return &ReviewOutput{
		ReviewID:  review.ID,
		OrderID:   review.OrderID,
		StoreID:   review.StoreID,
		Star:      review.Star,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func ToReviewPageOutput(reviews []*domain.Review, total int64, page, limit int32) *ReviewPageOutput {
	outputs := make([]*ReviewOutput, len(reviews))
	for i, review := range reviews {
		outputs[i] = ToReviewOutput(review)
	}
	return &ReviewPageOutput{
		Reviews: outputs,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}
}
