package domain

import "time"

type User struct {
	ID        string
	Username  string
	Email     string
	Nickname  string
	CreatedAt time.Time
	RemovedAt *time.Time
	RemovedBy string
}
