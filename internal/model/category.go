package model

type Category struct {
	BaseModel
	Name         string `db:"name" json:"name"`
	Slug         string `db:"slug" json:"slug"`
	Image        string `db:"image" json:"image"`
	ProductCount int    `db:"product_count" json:"product_count"` // Computed, not a column
}
