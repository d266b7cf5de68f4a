package models

import "time"

type StoreModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"index"`
	Category    string `gorm:"index"`
	Address     string
	OwnerID     string `gorm:"type:uuid"`
	ReviewCount int64  `gorm:"not null;default:0"`
	RatingSum   int64  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RemovalMark `gorm:"embedded"`
}

func (StoreModel) TableName() string {
	return "stores"
}
