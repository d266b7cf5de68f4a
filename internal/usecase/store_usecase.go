package usecase

import (
	"github.com/dalligo/delivery-service/internal/domain"
	storedto "github.com/dalligo/delivery-service/internal/usecase/dto/store"
)

type StoreUsecase interface {
	GetStoreByID(storeID string) (*storedto.StoreOutput, error)
	SearchStores(keyword, category string, page, limit int32) (*storedto.StorePageOutput, error)
}

type DefaultStoreUsecase struct {
	StoreRepo domain.StoreRepository
}

func NewDefaultStoreUsecase(storeRepo domain.StoreRepository) *DefaultStoreUsecase {
	return &DefaultStoreUsecase{StoreRepo: storeRepo}
}

func (uc *DefaultStoreUsecase) GetStoreByID(storeID string) (*storedto.StoreOutput, error) {
	store, err := uc.StoreRepo.GetStoreByID(storeID)
	if err != nil {
		return nil, err
	}
	return storedto.ToStoreOutput(store), nil
}

func (uc *DefaultStoreUsecase) SearchStores(keyword, category string, page, limit int32) (*storedto.StorePageOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	stores, total, err := uc.StoreRepo.SearchStores(keyword, category, page, limit)
	if err != nil {
		return nil, err
	}
	return storedto.ToStorePageOutput(stores, total, page, limit), nil
}
