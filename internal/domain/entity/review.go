package entity

import "time"

// Review is one customer review on a product.
type Review struct {
	ID        string
	ProductID string
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// ReviewInput is the payload for posting a review. Auth-gated like every
// other mutation.
type ReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}
