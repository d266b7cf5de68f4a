package domain

import "time"

type PaymentFilters struct {
	CreatedFrom time.Time
	CreatedTo   time.Time
	MinAmount   int64
	MaxAmount   int64
}

// PaymentTx is the transaction scope for settlement: the order status flip
// and the payment insert either commit together or not at all.
type PaymentTx interface {
	// GetOrderForUpdate reads the caller's order under a row lock, so the
	// payable check and the status flip form one atomic unit.
	GetOrderForUpdate(orderID, userID string) (*Order, error)
	UpdateOrderStatus(orderID string, newStatus OrderStatus) error
	CreatePayment(payment *Payment) error
	Commit() error
	Rollback() error
}

type PaymentRepository interface {
	BeginTx() (PaymentTx, error)
	GetPaymentByIDAndUserID(paymentID, userID string) (*Payment, error)
	GetPaymentsByUserID(userID string) ([]*Payment, error)
	SearchPayments(userID string, filters PaymentFilters) ([]*Payment, error)
	MarkPaymentRemoved(paymentID, userID, actor string) error
}
