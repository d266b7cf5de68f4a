package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/mappers"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultReviewRepository struct {
	DB *gorm.DB
}

func NewDefaultReviewRepository(db *gorm.DB) *DefaultReviewRepository {
	return &DefaultReviewRepository{DB: db}
}

func (r *DefaultReviewRepository) BeginTx() (domain.ReviewTx, error) {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin review transaction: %w", tx.Error)
	}
	return &reviewTx{tx: tx}, nil
}

func (r *DefaultReviewRepository) GetReviewsByUserID(userID string, page, limit int32) ([]*domain.Review, int64, error) {
	query := r.DB.Model(&models.ReviewModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	offset := (page - 1) * limit
	var reviewModels []models.ReviewModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find reviews: %w", err)
	}

	reviews := make([]*domain.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = mappers.ToDomainReview(&reviewModels[i])
	}
	return reviews, total, nil
}

func (r *DefaultReviewRepository) SearchStoreReviews(storeID string, stars []int32, page, limit int32) ([]*domain.Review, int64, error) {
	query := r.DB.Model(&models.ReviewModel{}).Where("store_id = ?", storeID)
	if len(stars) > 0 {
		query = query.Where("star IN (?)", stars)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count store reviews: %w", err)
	}

	// star ASC with creation order as the tie-break
	offset := (page - 1) * limit
	var reviewModels []models.ReviewModel
	if err := query.
		Order("star ASC, created_at ASC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search store reviews: %w", err)
	}

	reviews := make([]*domain.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = mappers.ToDomainReview(&reviewModels[i])
	}
	return reviews, total, nil
}

type reviewTx struct {
	tx *gorm.DB
}

func (t *reviewTx) GetOrderOwnedBy(orderID, userID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := t.tx.First(&model, "id = ? AND user_id = ?", orderID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&model), nil
}

func (t *reviewTx) GetReviewForUpdate(reviewID, userID string) (*domain.Review, error) {
	var model models.ReviewModel
	if err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ? AND user_id = ?", reviewID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return mappers.ToDomainReview(&model), nil
}

func (t *reviewTx) CreateReview(review *domain.Review) error {
	if err := t.tx.Create(mappers.ToGORMReview(review)).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (t *reviewTx) UpdateReviewContent(reviewID string, star int32, comment string) error {
	result := t.tx.Model(&models.ReviewModel{}).
		Where("id = ?", reviewID).
		Updates(map[string]interface{}{
			"star":    star,
			"comment": comment,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (t *reviewTx) MarkReviewRemoved(reviewID, userID, actor string) error {
	result := t.tx.Model(&models.ReviewModel{}).
		Where("id = ? AND user_id = ?", reviewID, userID).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"deleted_by": actor,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to remove review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// ApplyRatingDelta bumps the store aggregate with atomic column increments,
// so concurrent review writers serialize on the store row only for the
// duration of this statement.
func (t *reviewTx) ApplyRatingDelta(storeID string, starDelta, countDelta int64) error {
	result := t.tx.Model(&models.StoreModel{}).
		Where("id = ?", storeID).
		UpdateColumns(map[string]interface{}{
			"rating_sum":   gorm.Expr("rating_sum + ?", starDelta),
			"review_count": gorm.Expr("review_count + ?", countDelta),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to apply rating delta: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

func (t *reviewTx) Commit() error {
	return t.tx.Commit().Error
}

func (t *reviewTx) Rollback() error {
	return t.tx.Rollback().Error
}
