package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
	reviewdto "github.com/dalligo/delivery-service/internal/usecase/dto/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewFixture() (*DefaultReviewUsecase, *fakeReviewRepo) {
	reviewRepo := newFakeReviewRepo()
	reviewRepo.stores["store-1"] = &domain.Store{ID: "store-1", Name: "Pho 21"}
	reviewRepo.orders["order-1"] = &domain.Order{
		ID:      "order-1",
		UserID:  "user-1",
		StoreID: "store-1",
		Status:  domain.StatusOrderComplete,
	}

	userRepo := &fakeUserRepo{users: map[string]*domain.User{
		"alice": {ID: "user-1", Username: "alice"},
		"bob":   {ID: "user-2", Username: "bob"},
	}}

	uc := NewDefaultReviewUsecase(reviewRepo, userRepo, &fakeStoreRepo{repo: reviewRepo}, &fakeReviewPublisher{}, nil)
	return uc, reviewRepo
}

func TestCreateReview_BumpsStoreAggregate(t *testing.T) {
	uc, repo := newReviewFixture()

	review, err := uc.CreateReview(&reviewdto.CreateReviewInput{
		OrderID:  "order-1",
		Star:     4,
		Comment:  "good pho",
		Username: "alice",
	})
	require.NoError(t, err)
	assert.Len(t, review.ReviewID, 21)
	assert.Equal(t, "store-1", review.StoreID)

	store := repo.stores["store-1"]
	assert.Equal(t, int64(1), store.ReviewCount)
	assert.Equal(t, int64(4), store.RatingSum)
	assert.Equal(t, 4.0, store.RatingAverage())
}

func TestReviewLifecycle_AggregateRoundTrip(t *testing.T) {
	uc, repo := newReviewFixture()

	created, err := uc.CreateReview(&reviewdto.CreateReviewInput{
		OrderID:  "order-1",
		Star:     4,
		Comment:  "good pho",
		Username: "alice",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateReview(&reviewdto.UpdateReviewInput{
		ReviewID: created.ReviewID,
		Star:     2,
		Comment:  "went downhill",
		Username: "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), updated.Star)
	assert.Equal(t, "went downhill", updated.Comment)

	store := repo.stores["store-1"]
	assert.Equal(t, int64(1), store.ReviewCount)
	assert.Equal(t, int64(2), store.RatingSum)

	require.NoError(t, uc.DeleteReview(created.ReviewID, "alice"))
	assert.Equal(t, int64(0), store.ReviewCount)
	assert.Equal(t, int64(0), store.RatingSum)
	assert.Equal(t, 0.0, store.RatingAverage())

	removed := repo.reviews[created.ReviewID]
	require.NotNil(t, removed.RemovedAt)
	assert.Equal(t, "alice", removed.RemovedBy)

	// a removed review is gone for every later mutation
	_, err = uc.UpdateReview(&reviewdto.UpdateReviewInput{
		ReviewID: created.ReviewID,
		Star:     5,
		Username: "alice",
	})
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
	assert.ErrorIs(t, uc.DeleteReview(created.ReviewID, "alice"), domain.ErrReviewNotFound)
}

func TestUpdateReview_SameStarLeavesSumAlone(t *testing.T) {
	uc, repo := newReviewFixture()

	created, err := uc.CreateReview(&reviewdto.CreateReviewInput{
		OrderID:  "order-1",
		Star:     3,
		Comment:  "ok",
		Username: "alice",
	})
	require.NoError(t, err)

	_, err = uc.UpdateReview(&reviewdto.UpdateReviewInput{
		ReviewID: created.ReviewID,
		Star:     3,
		Comment:  "still ok",
		Username: "alice",
	})
	require.NoError(t, err)

	store := repo.stores["store-1"]
	assert.Equal(t, int64(1), store.ReviewCount)
	assert.Equal(t, int64(3), store.RatingSum)
	assert.Equal(t, "still ok", repo.reviews[created.ReviewID].Comment)
}

func TestCreateReview_OrderNotComplete(t *testing.T) {
	uc, repo := newReviewFixture()
	for _, status := range []domain.OrderStatus{
		domain.StatusPaymentWait,
		domain.StatusPaymentComplete,
		domain.StatusOrderCanceled,
	} {
		repo.orders["order-1"].Status = status

		_, err := uc.CreateReview(&reviewdto.CreateReviewInput{
			OrderID:  "order-1",
			Star:     5,
			Username: "alice",
		})
		assert.ErrorIs(t, err, domain.ErrOrderNotComplete, "status %s", status)
	}

	assert.Empty(t, repo.reviews)
	assert.Equal(t, int64(0), repo.stores["store-1"].ReviewCount)
	assert.Equal(t, int64(0), repo.stores["store-1"].RatingSum)
}

func TestReviewStarRange(t *testing.T) {
	uc, repo := newReviewFixture()

	for _, star := range []int32{0, -1, 6} {
		_, err := uc.CreateReview(&reviewdto.CreateReviewInput{
			OrderID:  "order-1",
			Star:     star,
			Username: "alice",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidStar, "star %d", star)
	}

	created, err := uc.CreateReview(&reviewdto.CreateReviewInput{
		OrderID:  "order-1",
		Star:     5,
		Username: "alice",
	})
	require.NoError(t, err)

	_, err = uc.UpdateReview(&reviewdto.UpdateReviewInput{
		ReviewID: created.ReviewID,
		Star:     6,
		Username: "alice",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStar)
	assert.Equal(t, int64(5), repo.stores["store-1"].RatingSum)
}

func TestCreateReview_ForeignOrderLooksAbsent(t *testing.T) {
	uc, repo := newReviewFixture()

	_, err := uc.CreateReview(&reviewdto.CreateReviewInput{
		OrderID:  "order-1",
		Star:     5,
		Username: "bob",
	})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Empty(t, repo.reviews)
}

func TestCreateReview_ConcurrentDistinctOrdersConverge(t *testing.T) {
	uc, repo := newReviewFixture()

	const n = 10
	var wantSum int64
	for i := 0; i < n; i++ {
		orderID := fmt.Sprintf("order-c%d", i)
		repo.orders[orderID] = &domain.Order{
			ID:      orderID,
			UserID:  "user-1",
			StoreID: "store-1",
			Status:  domain.StatusOrderComplete,
		}
		wantSum += int64(i%5 + 1)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.CreateReview(&reviewdto.CreateReviewInput{
				OrderID:  fmt.Sprintf("order-c%d", i),
				Star:     int32(i%5 + 1),
				Username: "alice",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	store := repo.stores["store-1"]
	assert.Equal(t, int64(n), store.ReviewCount)
	assert.Equal(t, wantSum, store.RatingSum)
}

func TestSearchStoreReviews(t *testing.T) {
	uc, repo := newReviewFixture()

	base := time.Now()
	for i, star := range []int32{5, 3, 3, 1} {
		reviewID := fmt.Sprintf("review-%d", i)
		repo.reviews[reviewID] = &domain.Review{
			ID:        reviewID,
			OrderID:   fmt.Sprintf("order-s%d", i),
			UserID:    "user-1",
			StoreID:   "store-1",
			Star:      star,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}

	page, err := uc.SearchStoreReviews(&reviewdto.StoreReviewsInput{
		StoreID: "store-1",
		Page:    1,
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, page.Reviews, 4)
	assert.Equal(t, int64(4), page.Total)
	// star ASC, creation order breaking ties
	assert.Equal(t, "review-3", page.Reviews[0].ReviewID)
	assert.Equal(t, "review-1", page.Reviews[1].ReviewID)
	assert.Equal(t, "review-2", page.Reviews[2].ReviewID)
	assert.Equal(t, "review-0", page.Reviews[3].ReviewID)

	filtered, err := uc.SearchStoreReviews(&reviewdto.StoreReviewsInput{
		StoreID: "store-1",
		Stars:   []int32{3, 5},
		Page:    1,
		Limit:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), filtered.Total)

	empty, err := uc.SearchStoreReviews(&reviewdto.StoreReviewsInput{
		StoreID: "store-1",
		Stars:   []int32{2},
		Page:    1,
		Limit:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Total)
	assert.Empty(t, empty.Reviews)

	_, err = uc.SearchStoreReviews(&reviewdto.StoreReviewsInput{
		StoreID: "no-such-store",
		Page:    1,
		Limit:   10,
	})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestGetUserReviews_ScopedAndPaged(t *testing.T) {
	uc, repo := newReviewFixture()

	base := time.Now()
	for i := 0; i < 5; i++ {
		reviewID := fmt.Sprintf("review-%d", i)
		repo.reviews[reviewID] = &domain.Review{
			ID:        reviewID,
			UserID:    "user-1",
			StoreID:   "store-1",
			Star:      4,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	repo.reviews["review-other"] = &domain.Review{
		ID:      "review-other",
		UserID:  "user-2",
		StoreID: "store-1",
		Star:    1,
	}

	page, err := uc.GetUserReviews(&reviewdto.UserReviewsInput{
		Username: "alice",
		Page:     1,
		Limit:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Reviews, 3)
	// newest first
	assert.Equal(t, "review-4", page.Reviews[0].ReviewID)

	second, err := uc.GetUserReviews(&reviewdto.UserReviewsInput{
		Username: "alice",
		Page:     2,
		Limit:    3,
	})
	require.NoError(t, err)
	assert.Len(t, second.Reviews, 2)

	theirs, err := uc.GetUserReviews(&reviewdto.UserReviewsInput{
		Username: "bob",
		Page:     1,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), theirs.Total)
}
