package repository

import (
	"errors"

	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/mappers"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) GetActiveByUsername(username string) (*domain.User, error) {
	var model models.UserModel
	if err := r.DB.First(&model, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

type DefaultCardRepository struct {
	DB *gorm.DB
}

func NewDefaultCardRepository(db *gorm.DB) *DefaultCardRepository {
	return &DefaultCardRepository{DB: db}
}

func (r *DefaultCardRepository) GetActiveByIDAndUserID(cardID, userID string) (*domain.Card, error) {
	var model models.CardModel
	if err := r.DB.First(&model, "id = ? AND user_id = ?", cardID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCard(&model), nil
}
