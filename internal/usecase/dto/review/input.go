package reviewdto

type CreateReviewInput struct {
	OrderID  string
	Star     int32
	Comment  string
	Username string
}

type UpdateReviewInput struct {
	ReviewID string
	Star     int32
	Comment  string
	Username string
}

type UserReviewsInput struct {
	Username string
	Page     int32
	Limit    int32
}

type StoreReviewsInput struct {
	StoreID string
	// Stars is the optional star filter: nil or empty means no filtering.
	Stars []int32
	Page  int32
	Limit int32
}
