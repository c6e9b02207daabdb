package client

import "time"

// Category mirrors the category rows the API returns.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryRef is the joined {id, name} category inside a product.
type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product mirrors the product rows the API returns.
type Product struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	CategoryID int         `json:"categoryId"`
	Category   CategoryRef `json:"category"`
	Price      float64     `json:"price"`
	Stock      int         `json:"stock"`
	IsDeleted  bool        `json:"isDeleted"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// ProductForm carries the fields a product form submits on create.
type ProductForm struct {
	Name       string  `json:"name"`
	CategoryID int     `json:"categoryId"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
}

// ProductUpdate carries a partial edit; nil fields are not sent.
type ProductUpdate struct {
	Name       *string  `json:"name,omitempty"`
	CategoryID *int     `json:"categoryId,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Stock      *int     `json:"stock,omitempty"`
}
