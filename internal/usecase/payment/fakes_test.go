package usecase

import (
	"errors"
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

type fakeCardRepo struct {
	cards map[string]*domain.Card
}

func (r *fakeCardRepo) GetActiveByIDAndUserID(cardID, userID string) (*domain.Card, error) {
	card, ok := r.cards[cardID]
	if !ok || card.UserID != userID || card.RemovedAt != nil {
		return nil, domain.ErrCardNotFound
	}
	return card, nil
}

type fakePaymentPublisher struct {
	mu     sync.Mutex
	events []kafka.PaymentEvent
}

func (p *fakePaymentPublisher) PublishPayment(event kafka.PaymentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// fakePaymentRepo keeps orders and payments in memory. BeginTx takes a
// repo-wide lock so transactions serialize the way row locks do, and staged
// writes only land on Commit.
type fakePaymentRepo struct {
	mu       sync.Mutex
	orders   map[string]*domain.Order
	payments map[string]*domain.Payment

	failCreatePayment bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		orders:   make(map[string]*domain.Order),
		payments: make(map[string]*domain.Payment),
	}
}

func (r *fakePaymentRepo) BeginTx() (domain.PaymentTx, error) {
	r.mu.Lock()
	return &fakePaymentTx{
		repo:           r,
		stagedStatuses: make(map[string]domain.OrderStatus),
	}, nil
}

func (r *fakePaymentRepo) GetPaymentByIDAndUserID(paymentID, userID string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[paymentID]
	if !ok || payment.UserID != userID || payment.RemovedAt != nil {
		return nil, domain.ErrPaymentNotFound
	}
	order, ok := r.orders[payment.OrderID]
	if !ok || order.RemovedAt != nil {
		return nil, domain.ErrOrderNotFound
	}
	joined := *payment
	orderCopy := *order
	joined.Order = &orderCopy
	return &joined, nil
}

func (r *fakePaymentRepo) GetPaymentsByUserID(userID string) ([]*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var payments []*domain.Payment
	for _, payment := range r.payments {
		if payment.UserID != userID || payment.RemovedAt != nil {
			continue
		}
		order, ok := r.orders[payment.OrderID]
		if !ok || order.RemovedAt != nil {
			continue
		}
		joined := *payment
		orderCopy := *order
		joined.Order = &orderCopy
		payments = append(payments, &joined)
	}
	return payments, nil
}

func (r *fakePaymentRepo) SearchPayments(userID string, filters domain.PaymentFilters) ([]*domain.Payment, error) {
	payments, err := r.GetPaymentsByUserID(userID)
	if err != nil {
		return nil, err
	}

	var matched []*domain.Payment
	for _, payment := range payments {
		if !filters.CreatedFrom.IsZero() && payment.CreatedAt.Before(filters.CreatedFrom) {
			continue
		}
		if !filters.CreatedTo.IsZero() && payment.CreatedAt.After(filters.CreatedTo) {
			continue
		}
		if filters.MinAmount > 0 && payment.Amount < filters.MinAmount {
			continue
		}
		if filters.MaxAmount > 0 && payment.Amount > filters.MaxAmount {
			continue
		}
		matched = append(matched, payment)
	}
	return matched, nil
}

func (r *fakePaymentRepo) MarkPaymentRemoved(paymentID, userID, actor string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[paymentID]
	if !ok || payment.UserID != userID || payment.RemovedAt != nil {
		return domain.ErrPaymentNotFound
	}
	now := time.Now()
	payment.RemovedAt = &now
	payment.RemovedBy = actor
	return nil
}

type fakePaymentTx struct {
	repo           *fakePaymentRepo
	stagedStatuses map[string]domain.OrderStatus
	stagedPayments []*domain.Payment
	finished       bool
}

func (t *fakePaymentTx) GetOrderForUpdate(orderID, userID string) (*domain.Order, error) {
	order, ok := t.repo.orders[orderID]
	if !ok || order.UserID != userID || order.RemovedAt != nil {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (t *fakePaymentTx) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	if _, ok := t.repo.orders[orderID]; !ok {
		return domain.ErrOrderNotFound
	}
	t.stagedStatuses[orderID] = newStatus
	return nil
}

func (t *fakePaymentTx) CreatePayment(payment *domain.Payment) error {
	if t.repo.failCreatePayment {
		return errors.New("insert failed")
	}
	copied := *payment
	t.stagedPayments = append(t.stagedPayments, &copied)
	return nil
}

func (t *fakePaymentTx) Commit() error {
	if t.finished {
		return errors.New("transaction already finished")
	}
	for orderID, status := range t.stagedStatuses {
		t.repo.orders[orderID].Status = status
	}
	for _, payment := range t.stagedPayments {
		t.repo.payments[payment.ID] = payment
	}
	t.finished = true
	t.repo.mu.Unlock()
	return nil
}

func (t *fakePaymentTx) Rollback() error {
	if t.finished {
		return nil
	}
	t.finished = true
	t.repo.mu.Unlock()
	return nil
}
