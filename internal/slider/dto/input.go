package dto

type CreateSlideInput struct {
	Image     string `json:"image" validate:"required,max=2048"`
	Heading   string `json:"heading" validate:"required,max=255"`
	Text      string `json:"text"`
	CTAText   string `json:"cta_text" validate:"max=100"`
	CTALink   string `json:"cta_link" validate:"max=2048"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
	IsActive  *bool  `json:"is_active"`
}

type UpdateSlideInput struct {
	ID string `json:"-" validate:"required"`
	CreateSlideInput
}
