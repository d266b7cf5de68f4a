package storedto

import "github.com/dalligo/delivery-service/internal/domain"

type StoreOutput struct {
	StoreID       string
	Name          string
	Category      string
	Address       string
	ReviewCount   int64
	RatingSum     int64
	RatingAverage float64
}

type StorePageOutput struct {
	Stores []*StoreOutput
	Total  int64
	Page   int32
	Limit  int32
}

func ToStorePageOutput(stores []*domain.Store, total int64, page, limit int32) *StorePageOutput {
	outputs := make([]*StoreOutput, 0, len(stores))
	for _, store := range stores {
		outputs = append(outputs, ToStoreOutput(store))
	}
	return &StorePageOutput{
		Stores: outputs,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
}

func ToStoreOutput(store *domain.Store) *StoreOutput {
	return &StoreOutput{
		StoreID:       store.ID,
		Name:          store.Name,
		Category:      store.Category,
		Address:       store.Address,
		ReviewCount:   store.ReviewCount,
		RatingSum:     store.RatingSum,
		RatingAverage: store.RatingAverage(),
	}
}
