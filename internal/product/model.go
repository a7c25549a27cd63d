package product

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewProductInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    *string `json:"image_url"`
}

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	ImageURL    *string  `json:"image_url"`
	Active      *bool    `json:"active"`
}

// HasAnyField reports whether the update would change anything at all.
func (u UpdateProductInput) HasAnyField() bool {
	return u.Name != nil ||
		u.Description != nil ||
		u.Price != nil ||
		u.Stock != nil ||
		u.ImageURL != nil ||
		u.Active != nil
}

type ListOptions struct {
	OnlyActive bool
	Search     *string
}
