package dto

// SubmitReviewInput is a shopper's review; it stays hidden until an admin approves it.
type SubmitReviewInput struct {
	ProductID *string `json:"product_id" validate:"omitempty,uuid"`
	Name      string  `json:"name" validate:"required,max=100"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Text      string  `json:"text" validate:"required,max=2000"`
}
