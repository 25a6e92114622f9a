package dto

type ProductFilters struct {
	CategoryIDs []int64 // every listed category must be attached (AND)
	Name        string  // case-insensitive substring
}

// RowFilter restricts the products x categories join.
type RowFilter struct {
	ProductIDs []int64 // nil means no restriction
	Name       string
}
