package models

import "time"

type ReviewModel struct {
	ID          string `gorm:"primaryKey"`
	OrderID     string `gorm:"type:uuid;index"`
	UserID      string `gorm:"type:uuid;index"`
	StoreID     string `gorm:"type:uuid;index:idx_store_star,priority:1"`
	Star        int32  `gorm:"index:idx_store_star,priority:2"`
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RemovalMark `gorm:"embedded"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
