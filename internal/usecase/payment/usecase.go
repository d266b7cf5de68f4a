package usecase

import (
	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/kafka"
	"github.com/dalligo/delivery-service/internal/infrastructure/metrics"
	paymentdto "github.com/dalligo/delivery-service/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	RegisterPayment(input *paymentdto.RegisterPaymentInput) error
	GetPayment(paymentID, username string) (*paymentdto.PaymentOutput, error)
	GetPayments(username string) ([]*paymentdto.PaymentOutput, error)
	SearchPayments(input *paymentdto.SearchPaymentsInput) ([]*paymentdto.PaymentOutput, error)
	RemovePayment(paymentID, username string) error
}

type PaymentEventPublisher interface {
	PublishPayment(event kafka.PaymentEvent) error
}

type DefaultPaymentUsecase struct {
	PaymentRepo domain.PaymentRepository
	UserRepo    domain.UserRepository
	CardRepo    domain.CardRepository
	Publisher   PaymentEventPublisher
	Metrics     *metrics.CoreMetrics
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	userRepo domain.UserRepository,
	cardRepo domain.CardRepository,
	publisher PaymentEventPublisher,
	coreMetrics *metrics.CoreMetrics) *DefaultPaymentUsecase {

	return &DefaultPaymentUsecase{
		PaymentRepo: paymentRepo,
		UserRepo:    userRepo,
		CardRepo:    cardRepo,
		Publisher:   publisher,
		Metrics:     coreMetrics,
	}
}
