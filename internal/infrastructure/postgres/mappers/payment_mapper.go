package mappers

import (
	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	payment := &domain.Payment{
		ID:        model.ID,
		UserID:    model.UserID,
		CardID:    model.CardID,
		OrderID:   model.OrderID,
		Amount:    model.Amount,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		RemovedAt: removedAt(model.RemovalMark),
		RemovedBy: model.DeletedBy,
	}
	if model.Order.ID != "" {
		payment.Order = ToDomainOrder(&model.Order)
	}
	return payment
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:        payment.ID,
		UserID:    payment.UserID,
		CardID:    payment.CardID,
		OrderID:   payment.OrderID,
		Amount:    payment.Amount,
		CreatedAt: payment.CreatedAt,
		UpdatedAt: payment.UpdatedAt,
	}
}
