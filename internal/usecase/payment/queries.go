package usecase

import (
	"github.com/dalligo/delivery-service/internal/domain"
	paymentdto "github.com/dalligo/delivery-service/internal/usecase/dto/payment"
)

func (uc *DefaultPaymentUsecase) GetPayment(paymentID, username string) (*paymentdto.PaymentOutput, error) {
	user, err := uc.UserRepo.GetActiveByUsername(username)
	if err != nil {
		return nil, err
	}

	payment, err := uc.PaymentRepo.GetPaymentByIDAndUserID(paymentID, user.ID)
	if err != nil {
		return nil, err
	}

	return paymentdto.ToPaymentOutput(payment), nil
}

func (uc *DefaultPaymentUsecase) GetPayments(username string) ([]*paymentdto.PaymentOutput, error) {
	user, err := uc.UserRepo.GetActiveByUsername(username)
	if err != nil {
		return nil, err
	}

	payments, err := uc.PaymentRepo.GetPaymentsByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	outputs := make([]*paymentdto.PaymentOutput, len(payments))
	for i, payment := range payments {
		outputs[i] = paymentdto.ToPaymentOutput(payment)
	}
	return outputs, nil
}

func (uc *DefaultPaymentUsecase) SearchPayments(input *paymentdto.SearchPaymentsInput) ([]*paymentdto.PaymentOutput, error) {
	user, err := uc.UserRepo.GetActiveByUsername(input.Username)
	if err != nil {
		return nil, err
	}

	payments, err := uc.PaymentRepo.SearchPayments(user.ID, domain.PaymentFilters{
		CreatedFrom: input.CreatedFrom,
		CreatedTo:   input.CreatedTo,
		MinAmount:   input.MinAmount,
		MaxAmount:   input.MaxAmount,
	})
	if err != nil {
		return nil, err
	}

	outputs := make([]*paymentdto.PaymentOutput, len(payments))
	for i, payment := range payments {
		outputs[i] = paymentdto.ToPaymentOutput(payment)
	}
	return outputs, nil
}
