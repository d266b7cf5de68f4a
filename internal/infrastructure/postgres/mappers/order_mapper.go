package mappers

import (
	"sort"
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	products := make([]models.OrderProductModel, len(model.Products))
	copy(products, model.Products)
	sort.Slice(products, func(i, j int) bool {
		return products[i].Position < products[j].Position
	})

	productIDs := make([]string, len(products))
	for i, product := range products {
		productIDs[i] = product.ProductID
	}

	return &domain.Order{
		ID:                model.ID,
		UserID:            model.UserID,
		StoreID:           model.StoreID,
		DeliveryAddressID: model.DeliveryAddressID,
		ProductIDs:        productIDs,
		Type:              model.Type,
		Status:            model.Status,
		Requirements:      model.Requirements,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
		RemovedAt:         removedAt(model.RemovalMark),
		RemovedBy:         model.DeletedBy,
	}
}

func removedAt(mark models.RemovalMark) *time.Time {
	if !mark.DeletedAt.Valid {
		return nil
	}
	t := mark.DeletedAt.Time
	return &t
}
