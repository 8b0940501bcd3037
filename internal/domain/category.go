package domain

import "time"

// DefaultCategoryColor is the color of categories created without one.
const DefaultCategoryColor = "#6366F1"

// Category groups transactions of one kind.
type Category struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	Kind          Kind      `json:"type"`
	Subcategories []string  `json:"subcategories"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon,omitempty"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RecordID implements Record.
func (c Category) RecordID() string { return c.ID }

// RecordOwner implements Record.
func (c Category) RecordOwner() string { return c.OwnerID }

// CategoryForm is the raw input to create a category.
type CategoryForm struct {
	Name          string   `json:"name" validate:"required"`
	Kind          string   `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Subcategories []string `json:"subcategories"`
	Color         string   `json:"color" validate:"omitempty,hexcolor"`
	Icon          string   `json:"icon"`
	IsDefault     bool     `json:"-"`
}

// CategoryPatch is a partial update of a category.
type CategoryPatch struct {
	Name          *string   `json:"name"`
	Kind          *string   `json:"type"`
	Subcategories *[]string `json:"subcategories"`
	Color         *string   `json:"color"`
	Icon          *string   `json:"icon"`
}

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	Kind Kind
}
