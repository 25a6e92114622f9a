package model

// Category.Name is always the storage form (lower case, underscores).
type Category struct {
	BaseModel
	Name string `db:"name" json:"name"`
}

// CategoryRef is the {id, name} pair returned to clients, name in display form.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
