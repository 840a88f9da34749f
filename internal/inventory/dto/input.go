package dto

type AdjustStockInput struct {
	ProductID      string  `json:"product_id" validate:"required,uuid"`
	VariantID      *string `json:"variant_id" validate:"omitempty,uuid"`
	QuantityChange int     `json:"quantity_change" validate:"required"`
	Reason         string  `json:"reason" validate:"max=255"`
	MovementType   string  `json:"movement_type" validate:"omitempty,oneof=adjustment sale restock return"`
	ReferenceType  string  `json:"reference_type"`
	ReferenceID    string  `json:"reference_id"`
	UserID         string  `json:"-"`
}
