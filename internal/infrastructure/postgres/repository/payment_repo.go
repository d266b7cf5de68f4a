package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/mappers"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) BeginTx() (domain.PaymentTx, error) {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin payment transaction: %w", tx.Error)
	}
	return &paymentTx{tx: tx}, nil
}

func (r *DefaultPaymentRepository) GetPaymentByIDAndUserID(paymentID, userID string) (*domain.Payment, error) {
	var model models.PaymentModel
	if err := r.DB.Preload("Order.Products").Preload("Order").
		First(&model, "id = ? AND user_id = ?", paymentID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	if model.Order.ID == "" {
		// the backing order was removed, so the projection has nothing to join
		return nil, domain.ErrOrderNotFound
	}
	return mappers.ToDomainPayment(&model), nil
}

func (r *DefaultPaymentRepository) GetPaymentsByUserID(userID string) ([]*domain.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.DB.Preload("Order.Products").Preload("Order").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find payments: %w", err)
	}

	payments := make([]*domain.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		if paymentModels[i].Order.ID == "" {
			continue
		}
		payments = append(payments, mappers.ToDomainPayment(&paymentModels[i]))
	}
	return payments, nil
}

func (r *DefaultPaymentRepository) SearchPayments(userID string, filters domain.PaymentFilters) ([]*domain.Payment, error) {
	query := r.DB.Model(&models.PaymentModel{}).
		Preload("Order.Products").Preload("Order").
		Where("user_id = ?", userID)

	if !filters.CreatedFrom.IsZero() {
		query = query.Where("payments.created_at >= ?", filters.CreatedFrom)
	}
	if !filters.CreatedTo.IsZero() {
		query = query.Where("payments.created_at <= ?", filters.CreatedTo)
	}
	if filters.MinAmount > 0 {
		query = query.Where("amount >= ?", filters.MinAmount)
	}
	if filters.MaxAmount > 0 {
		query = query.Where("amount <= ?", filters.MaxAmount)
	}

	var paymentModels []models.PaymentModel
	if err := query.Order("payments.created_at DESC").Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search payments: %w", err)
	}

	payments := make([]*domain.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		if paymentModels[i].Order.ID == "" {
			continue
		}
		payments = append(payments, mappers.ToDomainPayment(&paymentModels[i]))
	}
	return payments, nil
}

func (r *DefaultPaymentRepository) MarkPaymentRemoved(paymentID, userID, actor string) error {
	result := r.DB.Model(&models.PaymentModel{}).
		Where("id = ? AND user_id = ?", paymentID, userID).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"deleted_by": actor,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to remove payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

type paymentTx struct {
	tx *gorm.DB
}

func (t *paymentTx) GetOrderForUpdate(orderID, userID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ? AND user_id = ?", orderID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&model), nil
}

func (t *paymentTx) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	result := t.tx.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", newStatus)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (t *paymentTx) CreatePayment(payment *domain.Payment) error {
	if err := t.tx.Create(mappers.ToGORMPayment(payment)).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (t *paymentTx) Commit() error {
	return t.tx.Commit().Error
}

func (t *paymentTx) Rollback() error {
	return t.tx.Rollback().Error
}
