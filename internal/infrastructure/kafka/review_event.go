package kafka

type ReviewEvent struct {
	ReviewID string `json:"review_id"`
	OrderID  string `json:"order_id"`
	StoreID  string `json:"store_id"`
	UserID   string `json:"user_id"`
	Star     int32  `json:"star"`
	Action   string `json:"action"` // created, updated, deleted
}
