package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/kafka"
	paymentdto "github.com/dalligo/delivery-service/internal/usecase/dto/payment"
	"github.com/google/uuid"
)

// RegisterPayment settles an order: the PAYMENT_WAIT -> PAYMENT_COMPLETE
// transition and the payment insert commit in one transaction. The order row
// is locked for the duration, so a concurrent double submission blocks, then
// re-reads PAYMENT_COMPLETE and fails with ErrAlreadySettled.
func (uc *DefaultPaymentUsecase) RegisterPayment(input *paymentdto.RegisterPaymentInput) error {
	start := time.Now()

	if input.Amount <= 0 {
		uc.recordPaymentError("invalid_amount")
		return domain.ErrInvalidAmount
	}

	user, err := uc.UserRepo.GetActiveByUsername(input.Username)
	if err != nil {
		return err
	}

	card, err := uc.CardRepo.GetActiveByIDAndUserID(input.CardID, user.ID)
	if err != nil {
		return err
	}

	tx, err := uc.PaymentRepo.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	var committed bool
	defer func() {
		if !committed {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				slog.Error("failed to rollback payment transaction", "order_id", input.OrderID, "error", rollbackErr)
			}
		}
	}()

	order, err := tx.GetOrderForUpdate(input.OrderID, user.ID)
	if err != nil {
		return err
	}

	if err := order.AssertPayable(); err != nil {
		uc.recordPaymentError("already_settled")
		return err
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CardID:    card.ID,
		OrderID:   order.ID,
		Amount:    input.Amount,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := tx.UpdateOrderStatus(order.ID, domain.StatusPaymentComplete); err != nil {
		return err
	}

	// a failed insert must abort the status flip too, never be swallowed
	if err := tx.CreatePayment(payment); err != nil {
		uc.recordPaymentError("persistence")
		return err
	}

	if err := tx.Commit(); err != nil {
		uc.recordPaymentError("commit")
		return fmt.Errorf("failed to commit payment transaction: %w", err)
	}
	committed = true

	uc.recordPaymentRegistered(order, payment, time.Since(start))

	go func(event kafka.PaymentEvent) {
		if err := uc.Publisher.PublishPayment(event); err != nil {
			slog.Error("failed to publish kafka PaymentEvent", "stage", "registering", "error", err.Error())
		}
	}(kafka.PaymentEvent{
		PaymentID: payment.ID,
		OrderID:   order.ID,
		UserID:    user.ID,
		StoreID:   order.StoreID,
		Amount:    payment.Amount,
		Status:    string(domain.StatusPaymentComplete),
	})

	return nil
}

func (uc *DefaultPaymentUsecase) recordPaymentRegistered(order *domain.Order, payment *domain.Payment, elapsed time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPaymentRegistered(order.StoreID, payment.Amount)
	uc.Metrics.RecordSettlementDuration("success", elapsed.Seconds())
}

func (uc *DefaultPaymentUsecase) recordPaymentError(errorType string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPaymentError(errorType)
}
