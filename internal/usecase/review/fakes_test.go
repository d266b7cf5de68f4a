package usecase

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/kafka"
)

type fakeUserRepo struct {
	users map[string]*domain.User // keyed by username
}

func (r *fakeUserRepo) GetActiveByUsername(username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok || user.RemovedAt != nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

type fakeReviewPublisher struct {
	mu     sync.Mutex
	events []kafka.ReviewEvent
}

func (p *fakeReviewPublisher) PublishReview(event kafka.ReviewEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// fakeReviewRepo keeps orders, reviews and store aggregates in memory.
// BeginTx takes a repo-wide lock so transactions serialize the way row locks
// do; mutations are staged and land on Commit only.
type fakeReviewRepo struct {
	mu      sync.Mutex
	orders  map[string]*domain.Order
	reviews map[string]*domain.Review
	stores  map[string]*domain.Store
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		orders:  make(map[string]*domain.Order),
		reviews: make(map[string]*domain.Review),
		stores:  make(map[string]*domain.Store),
	}
}

func (r *fakeReviewRepo) BeginTx() (domain.ReviewTx, error) {
	r.mu.Lock()
	return &fakeReviewTx{repo: r}, nil
}

func (r *fakeReviewRepo) GetReviewsByUserID(userID string, page, limit int32) ([]*domain.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*domain.Review
	for _, review := range r.reviews {
		if review.UserID == userID && review.RemovedAt == nil {
			copied := *review
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func (r *fakeReviewRepo) SearchStoreReviews(storeID string, stars []int32, page, limit int32) ([]*domain.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	starSet := make(map[int32]bool, len(stars))
	for _, star := range stars {
		starSet[star] = true
	}

	var matched []*domain.Review
	for _, review := range r.reviews {
		if review.StoreID != storeID || review.RemovedAt != nil {
			continue
		}
		if len(starSet) > 0 && !starSet[review.Star] {
			continue
		}
		copied := *review
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Star != matched[j].Star {
			return matched[i].Star < matched[j].Star
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func paginate(reviews []*domain.Review, page, limit int32) []*domain.Review {
	offset := int((page - 1) * limit)
	if offset >= len(reviews) {
		return nil
	}
	end := offset + int(limit)
	if end > len(reviews) {
		end = len(reviews)
	}
	return reviews[offset:end]
}

type stagedDelta struct {
	storeID    string
	starDelta  int64
	countDelta int64
}

type stagedContent struct {
	star    int32
	comment string
}

type fakeReviewTx struct {
	repo           *fakeReviewRepo
	stagedCreates  []*domain.Review
	stagedUpdates  map[string]stagedContent
	stagedRemovals map[string]string // reviewID -> actor
	stagedDeltas   []stagedDelta
	finished       bool
}

func (t *fakeReviewTx) GetOrderOwnedBy(orderID, userID string) (*domain.Order, error) {
	order, ok := t.repo.orders[orderID]
	if !ok || order.UserID != userID || order.RemovedAt != nil {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (t *fakeReviewTx) GetReviewForUpdate(reviewID, userID string) (*domain.Review, error) {
	review, ok := t.repo.reviews[reviewID]
	if !ok || review.UserID != userID || review.RemovedAt != nil {
		return nil, domain.ErrReviewNotFound
	}
	copied := *review
	return &copied, nil
}

func (t *fakeReviewTx) CreateReview(review *domain.Review) error {
	copied := *review
	t.stagedCreates = append(t.stagedCreates, &copied)
	return nil
}

func (t *fakeReviewTx) UpdateReviewContent(reviewID string, star int32, comment string) error {
	if _, ok := t.repo.reviews[reviewID]; !ok {
		return domain.ErrReviewNotFound
	}
	if t.stagedUpdates == nil {
		t.stagedUpdates = make(map[string]stagedContent)
	}
	t.stagedUpdates[reviewID] = stagedContent{star: star, comment: comment}
	return nil
}

func (t *fakeReviewTx) MarkReviewRemoved(reviewID, userID, actor string) error {
	review, ok := t.repo.reviews[reviewID]
	if !ok || review.UserID != userID || review.RemovedAt != nil {
		return domain.ErrReviewNotFound
	}
	if t.stagedRemovals == nil {
		t.stagedRemovals = make(map[string]string)
	}
	t.stagedRemovals[reviewID] = actor
	return nil
}

func (t *fakeReviewTx) ApplyRatingDelta(storeID string, starDelta, countDelta int64) error {
	if _, ok := t.repo.stores[storeID]; !ok {
		return domain.ErrStoreNotFound
	}
	t.stagedDeltas = append(t.stagedDeltas, stagedDelta{storeID, starDelta, countDelta})
	return nil
}

func (t *fakeReviewTx) Commit() error {
	if t.finished {
		return errors.New("transaction already finished")
	}
	for _, review := range t.stagedCreates {
		t.repo.reviews[review.ID] = review
	}
	for reviewID, content := range t.stagedUpdates {
		t.repo.reviews[reviewID].Star = content.star
		t.repo.reviews[reviewID].Comment = content.comment
	}
	for reviewID, actor := range t.stagedRemovals {
		now := time.Now()
		t.repo.reviews[reviewID].RemovedAt = &now
		t.repo.reviews[reviewID].RemovedBy = actor
	}
	for _, delta := range t.stagedDeltas {
		store := t.repo.stores[delta.storeID]
		store.RatingSum += delta.starDelta
		store.ReviewCount += delta.countDelta
	}
	t.finished = true
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeReviewTx) Rollback() error {
	if t.finished {
		return nil
	}
	t.finished = true
	t.repo.mu.Unlock()
	return nil
}

type fakeStoreRepo struct {
	repo *fakeReviewRepo
}

func (r *fakeStoreRepo) GetStoreByID(storeID string) (*domain.Store, error) {
	r.repo.mu.Lock()
	defer r.repo.mu.Unlock()

	store, ok := r.repo.stores[storeID]
	if !ok || store.RemovedAt != nil {
		return nil, domain.ErrStoreNotFound
	}
	copied := *store
	return &copied, nil
}

func (r *fakeStoreRepo) SearchStores(keyword, category string, page, limit int32) ([]*domain.Store, int64, error) {
	r.repo.mu.Lock()
	defer r.repo.mu.Unlock()

	var matched []*domain.Store
	for _, store := range r.repo.stores {
		if store.RemovedAt != nil {
			continue
		}
		if category != "" && store.Category != category {
			continue
		}
		copied := *store
		matched = append(matched, &copied)
	}
	return matched, int64(len(matched)), nil
}
