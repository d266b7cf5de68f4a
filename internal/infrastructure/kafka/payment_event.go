package kafka

type PaymentEvent struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	UserID    string `json:"user_id"`
	StoreID   string `json:"store_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}
