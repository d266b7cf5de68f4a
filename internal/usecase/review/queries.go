package usecase

import (
	reviewdto "github.com/dalligo/delivery-service/internal/usecase/dto/review"
)

const defaultPageLimit = 10

func normalizePage(page, limit int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

// GetUserReviews lists the caller's own reviews. No reviews is an empty
// page, not an error.
func (uc *DefaultReviewUsecase) GetUserReviews(input *reviewdto.UserReviewsInput) (*reviewdto.ReviewPageOutput, error) {
	user, err := uc.UserRepo.GetActiveByUsername(input.Username)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePage(input.Page, input.Limit)
	reviews, total, err := uc.ReviewRepo.GetReviewsByUserID(user.ID, page, limit)
	if err != nil {
		return nil, err
	}

	return reviewdto.ToReviewPageOutput(reviews, total, page, limit), nil
}

// SearchStoreReviews pages a store's reviews, star ascending. A nil or
// empty star filter means no filtering; an empty result is an empty page.
func (uc *DefaultReviewUsecase) SearchStoreReviews(input *reviewdto.StoreReviewsInput) (*reviewdto.ReviewPageOutput, error) {
	if _, err := uc.StoreRepo.GetStoreByID(input.StoreID); err != nil {
		return nil, err
	}

	page, limit := normalizePage(input.Page, input.Limit)
	reviews, total, err := uc.ReviewRepo.SearchStoreReviews(input.StoreID, input.Stars, page, limit)
	if err != nil {
		return nil, err
	}

	return reviewdto.ToReviewPageOutput(reviews, total, page, limit), nil
}
