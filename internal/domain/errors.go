package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCardNotFound    = errors.New("card not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrStoreNotFound   = errors.New("store not found")

	ErrAlreadySettled   = errors.New("order already settled")
	ErrOrderNotComplete = errors.New("order is not complete")

	ErrInvalidStar   = errors.New("star must be between 1 and 5")
	ErrInvalidAmount = errors.New("amount must be a positive value")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCardNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrReviewNotFound) ||
		errors.Is(err, ErrStoreNotFound)
}
