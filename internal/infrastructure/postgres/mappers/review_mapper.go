package mappers

import (
	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/models"
)

func ToDomainReview(model *models.ReviewModel) *domain.Review {
	return &domain.Review{
		ID:        model.ID,
		OrderID:   model.OrderID,
		UserID:    model.UserID,
		StoreID:   model.StoreID,
		Star:      model.Star,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		RemovedAt: removedAt(model.RemovalMark),
		RemovedBy: model.DeletedBy,
	}
}

func ToGORMReview(review *domain.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:        review.ID,
		OrderID:   review.OrderID,
		UserID:    review.UserID,
		StoreID:   review.StoreID,
		Star:      review.Star,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
