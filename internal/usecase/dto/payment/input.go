package paymentdto

import "time"

type RegisterPaymentInput struct {
	OrderID  string
	CardID   string
	Amount   int64
	Username string
}

type SearchPaymentsInput struct {
	Username    string
	CreatedFrom time.Time
	CreatedTo   time.Time
	MinAmount   int64
	MaxAmount   int64
}
