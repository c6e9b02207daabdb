package repositories

import (
	"errors"

	"shopadmin/internal/models"
)

// ErrCategoryNotFound is returned when no non-deleted category matches.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category data access.
// All lookups are scoped to non-deleted rows; soft-deleted categories are
// invisible to every method except the underlying store.
type CategoryRepository interface {
	GetAllActive() ([]models.Category, error)
	GetActiveByID(id int) (*models.Category, error)
	GetActiveByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	SoftDelete(id int) (*models.Category, error)
}
