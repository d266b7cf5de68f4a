package mappers

import (
	"github.com/dalligo/delivery-service/internal/domain"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/models"
)

func ToDomainStore(model *models.StoreModel) *domain.Store {
	return &domain.Store{
		ID:          model.ID,
		Name:        model.Name,
		Category:    model.Category,
		Address:     model.Address,
		OwnerID:     model.OwnerID,
		ReviewCount: model.ReviewCount,
		RatingSum:   model.RatingSum,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		RemovedAt:   removedAt(model.RemovalMark),
		RemovedBy:   model.DeletedBy,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:        model.ID,
		Username:  model.Username,
		Email:     model.Email,
		Nickname:  model.Nickname,
		CreatedAt: model.CreatedAt,
		RemovedAt: removedAt(model.RemovalMark),
		RemovedBy: model.DeletedBy,
	}
}

func ToDomainCard(model *models.CardModel) *domain.Card {
	return &domain.Card{
		ID:          model.ID,
		UserID:      model.UserID,
		CardCompany: model.CardCompany,
		CardNumber:  model.CardNumber,
		CreatedAt:   model.CreatedAt,
		RemovedAt:   removedAt(model.RemovalMark),
		RemovedBy:   model.DeletedBy,
	}
}
