package category

import "errors"

var (
	ErrNameRequired  = errors.New("name is required")
	ErrAlreadyExists = errors.New("category already exists")
)
