package models

import (
	"time"

	"github.com/dalligo/delivery-service/internal/domain"
)

type OrderModel struct {
	ID                string             `gorm:"primaryKey;type:uuid"`
	UserID            string             `gorm:"type:uuid;index"`
	StoreID           string             `gorm:"type:uuid;index"`
	DeliveryAddressID string             `gorm:"type:uuid"`
	Type              domain.OrderType
	Status            domain.OrderStatus `gorm:"index"`
	Requirements      string
	Products          []OrderProductModel `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt         time.Time           `gorm:"index"`
	UpdatedAt         time.Time
	RemovalMark       `gorm:"embedded"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderProductModel struct {
	OrderID   string `gorm:"primaryKey;type:uuid"`
	ProductID string `gorm:"primaryKey;type:uuid"`
	Position  int32
}

func (OrderProductModel) TableName() string {
	return "order_products"
}
