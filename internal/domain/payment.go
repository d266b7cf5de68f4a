package domain

import "time"

// Payment is a local ledger entry: registering one settles its order.
// Amount is kept in the minor currency unit.
type Payment struct {
	ID        string
	UserID    string
	CardID    string
	OrderID   string
	Amount    int64
	CreatedAt time.Time
	UpdatedAt time.Time
	RemovedAt *time.Time
	RemovedBy string

	Order *Order
}
