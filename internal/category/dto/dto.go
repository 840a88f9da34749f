package dto

type CategoryFilters struct {
	WithCounts bool   // Count active products per category
	SortBy     string // name, created_at
}
