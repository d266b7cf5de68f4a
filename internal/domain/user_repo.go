package domain

// UserRepository resolves an authenticated principal to a live account.
// Removed users resolve as ErrUserNotFound.
type UserRepository interface {
	GetActiveByUsername(username string) (*User, error)
}

type CardRepository interface {
	GetActiveByIDAndUserID(cardID, userID string) (*Card, error)
}
