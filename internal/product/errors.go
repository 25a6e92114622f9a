package product

import (
	"errors"
	"math"
)

// MaxPrice is the largest price the products table's INTEGER column holds.
const MaxPrice = math.MaxInt32

var (
	ErrNotFound         = errors.New("product not found")
	ErrAlreadyExists    = errors.New("product already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidPrice     = errors.New("price must be between 0 and 2147483647")
)
