package usecase

import (
	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/kafka"
	"github.com/dalligo/delivery-service/internal/infrastructure/metrics"
	reviewdto "github.com/dalligo/delivery-service/internal/usecase/dto/review"
)

type ReviewUsecase interface {
	CreateReview(input *reviewdto.CreateReviewInput) (*reviewdto.ReviewOutput, error)
	UpdateReview(input *reviewdto.UpdateReviewInput) (*reviewdto.ReviewOutput, error)
	DeleteReview(reviewID, username string) error
	GetUserReviews(input *reviewdto.UserReviewsInput) (*reviewdto.ReviewPageOutput, error)
	SearchStoreReviews(input *reviewdto.StoreReviewsInput) (*reviewdto.ReviewPageOutput, error)
}

type ReviewEventPublisher interface {
	PublishReview(event kafka.ReviewEvent) error
}

type DefaultReviewUsecase struct {
	ReviewRepo domain.ReviewRepository
	UserRepo   domain.UserRepository
	StoreRepo  domain.StoreRepository
	Publisher  ReviewEventPublisher
	Metrics    *metrics.CoreMetrics
}

func NewDefaultReviewUsecase(
	reviewRepo domain.ReviewRepository,
	userRepo domain.UserRepository,
	storeRepo domain.StoreRepository,
	publisher ReviewEventPublisher,
	coreMetrics *metrics.CoreMetrics) *DefaultReviewUsecase {

	return &DefaultReviewUsecase{
		ReviewRepo: reviewRepo,
		UserRepo:   userRepo,
		StoreRepo:  storeRepo,
		Publisher:  publisher,
		Metrics:    coreMetrics,
	}
}

func validStar(star int32) bool {
	return star >= 1 && star <= 5
}
