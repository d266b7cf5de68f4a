package repository

import (
	"errors"
	"fmt"

	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/mappers"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStoreRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{DB: db}
}

func (r *DefaultStoreRepository) GetStoreByID(storeID string) (*domain.Store, error) {
	var model models.StoreModel
	if err := r.DB.First(&model, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStore(&model), nil
}

func (r *DefaultStoreRepository) SearchStores(keyword, category string, page, limit int32) ([]*domain.Store, int64, error) {
	query := r.DB.Model(&models.StoreModel{})
	if keyword != "" {
		query = query.Where("name ILIKE ?", "%"+keyword+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count stores: %w", err)
	}

	offset := (page - 1) * limit
	var storeModels []models.StoreModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&storeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search stores: %w", err)
	}

	stores := make([]*domain.Store, len(storeModels))
	for i := range storeModels {
		stores[i] = mappers.ToDomainStore(&storeModels[i])
	}
	return stores, total, nil
}
