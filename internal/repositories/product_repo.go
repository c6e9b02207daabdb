package repositories

import (
	"errors"

	"shopadmin/internal/models"
)

// ErrProductNotFound is returned when no non-deleted product matches.
var ErrProductNotFound = errors.New("product not found")

// ProductFilters narrows a product listing. Both filters combine with
// logical AND; a nil CategoryID or empty Search leaves that axis open.
type ProductFilters struct {
	CategoryID *int
	Search     string
}

// ProductRepository defines the interface for product data access.
// Reads return products with their category association populated, and
// every method is scoped to non-deleted rows.
type ProductRepository interface {
	GetAllActive(filters ProductFilters) ([]models.Product, error)
	GetActiveByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	UpdateFields(id int, fields map[string]interface{}) (*models.Product, error)
	SoftDelete(id int) (*models.Product, error)
}
