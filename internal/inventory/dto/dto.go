package dto

type MovementFilters struct {
	ProductID    string
	VariantID    string
	MovementType string
	Page         int
	PageSize     int
}
