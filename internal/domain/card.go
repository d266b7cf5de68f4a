package domain

import "time"

type Card struct {
	ID          string
	UserID      string
	CardCompany string
	CardNumber  string
	CreatedAt   time.Time
	RemovedAt   *time.Time
	RemovedBy   string
}
