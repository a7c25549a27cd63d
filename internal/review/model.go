package review

import "time"

// Review is a customer rating on a product. Guest reviews carry only the
// display name; signed-in reviews also keep the author id.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    *uint     `json:"user_id,omitempty"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type NewReviewInput struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// Summary aggregates a product's reviews for listing pages.
type Summary struct {
	ProductID     string  `json:"product_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
