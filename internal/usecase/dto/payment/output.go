package paymentdto

import (
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
)

// PaymentOutput is the payment joined with its order projection.
type PaymentOutput struct {
	PaymentID    string
	Amount       int64
	OrderID      string
	OrderTime    time.Time
	OrderType    domain.OrderType
	OrderStatus  domain.OrderStatus
	Requirements string
}

func ToPaymentOutput(payment *domain.Payment) *PaymentOutput {
	output := &PaymentOutput{
		PaymentID: payment.ID,
		Amount:    payment.Amount,
		OrderID:   payment.OrderID,
	}
	if payment.Order != nil {
		output.OrderTime = payment.Order.CreatedAt
		output.OrderType = payment.Order.Type
		output.OrderStatus = payment.Order.Status
		output.Requirements = payment.Order.Requirements
	}
	return output
}
