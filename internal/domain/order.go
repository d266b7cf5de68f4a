package domain

import "time"

type OrderStatus string

const (
	StatusPaymentWait     OrderStatus = "PAYMENT_WAIT"
	StatusPaymentComplete OrderStatus = "PAYMENT_COMPLETE"
	StatusOrderComplete   OrderStatus = "ORDER_COMPLETE"
	StatusOrderCanceled   OrderStatus = "ORDER_CANCELED"
)

type OrderType string

const (
	TypeDelivery OrderType = "DELIVERY"
	TypePickup   OrderType = "PICKUP"
)

type Order struct {
	ID                string
	UserID            string
	StoreID           string
	DeliveryAddressID string
	ProductIDs        []string
	Type              OrderType
	Status            OrderStatus
	Requirements      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	RemovedAt         *time.Time
	RemovedBy         string
}

// AssertPayable guards the PAYMENT_WAIT -> PAYMENT_COMPLETE transition.
// Any other status means a settlement already happened for this order.
func (o *Order) AssertPayable() error {
	if o.Status != StatusPaymentWait {
		return ErrAlreadySettled
	}
	return nil
}

func (o *Order) MarkPaid() {
	o.Status = StatusPaymentComplete
}

// AssertReviewable succeeds only for fully completed orders.
func (o *Order) AssertReviewable() error {
	if o.Status != StatusOrderComplete {
		return ErrOrderNotComplete
	}
	return nil
}
