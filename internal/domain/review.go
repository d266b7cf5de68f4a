package domain

import "time"

type Review struct {
	ID        string
	OrderID   string
	UserID    string
	StoreID   string
	Star      int32
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
	RemovedAt *time.Time
	RemovedBy string
}
