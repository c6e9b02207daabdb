package handlers

import (
	"time"

	"shopadmin/internal/models"
)

// CategoryRef is the joined category shape embedded in product responses.
type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductResponse is the wire shape of a product: the row plus its category
// reduced to {id, name}.
type ProductResponse struct {
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

func newProductResponse(product models.Product) ProductResponse {
	return ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		CategoryID: product.CategoryID,
		Category: CategoryRef{
			ID:   product.Category.ID,
			Name: product.Category.Name,
		},
		Price:     product.Price,
		Stock:     product.Stock,
		IsDeleted: product.IsDeleted,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func newProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = newProductResponse(product)
	}
	return responses
}
