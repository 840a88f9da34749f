package model

type SliderSlide struct {
	BaseModel
	Image     string `db:"image" json:"image"`
	Heading   string `db:"heading" json:"heading"`
	Text      string `db:"text" json:"text"`
	CTAText   string `db:"cta_text" json:"cta_text"`
	CTALink   string `db:"cta_link" json:"cta_link"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}
