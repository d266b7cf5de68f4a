package models

import "time"

// At most one non-removed payment may exist per order; enforced by a
// partial unique index on order_id (see migrations/0001_init.up.sql).
type PaymentModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	UserID      string `gorm:"type:uuid;index"`
	CardID      string `gorm:"type:uuid"`
	OrderID     string `gorm:"type:uuid;index"`
	Order       OrderModel `gorm:"foreignKey:OrderID;references:ID"`
	Amount      int64  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RemovalMark `gorm:"embedded"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
