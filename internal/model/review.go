package model

import "time"

type Review struct {
	ID         string    `db:"id" json:"id"`
	ProductID  *string   `db:"product_id" json:"product_id"` // Nullable, storewide reviews have none
	Name       string    `db:"name" json:"name"`
	Rating     int       `db:"rating" json:"rating"`
	Text       string    `db:"text" json:"text"`
	IsApproved bool      `db:"is_approved" json:"is_approved"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
