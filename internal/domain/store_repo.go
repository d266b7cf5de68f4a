package domain

type StoreRepository interface {
	GetStoreByID(storeID string) (*Store, error)
	SearchStores(keyword, category string, page, limit int32) ([]*Store, int64, error)
}
