package models

import "time"

type UserModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Username    string `gorm:"uniqueIndex"`
	Email       string
	Nickname    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RemovalMark `gorm:"embedded"`
}

func (UserModel) TableName() string {
	return "users"
}

type CardModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	UserID      string `gorm:"type:uuid;index"`
	CardCompany string
	CardNumber  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RemovalMark `gorm:"embedded"`
}

func (CardModel) TableName() string {
	return "cards"
}
