package dto

type CreateProductInput struct {
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	CategoryIDs []int64 `json:"categoryIds"`
}

// UpdateProductInput carries a partial update; nil fields are left unchanged
// and an empty CategoryIDs keeps the current associations.
type UpdateProductInput struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	CategoryIDs []int64 `json:"categoryIds"`
}
