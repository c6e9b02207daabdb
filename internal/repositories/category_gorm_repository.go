package repositories

import (
	"errors"
	"fmt"
	"time"

	"shopadmin/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAllActive retrieves all non-deleted categories, newest first.
func (r *GORMCategoryRepository) GetAllActive() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetActiveByID retrieves a non-deleted category by its ID.
func (r *GORMCategoryRepository) GetActiveByID(id int) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// GetActiveByName retrieves a non-deleted category by name. Matching is
// case-insensitive so the dashboard never ends up with "Books" and "books"
// as two live categories.
func (r *GORMCategoryRepository) GetActiveByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "LOWER(name) = LOWER(?) AND is_deleted = ?", name, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name %q: %w", name, err)
	}
	return &category, nil
}

// Create persists a new category. The ID comes from the caller.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// SoftDelete flags a non-deleted category as deleted and refreshes its
// updatedAt, returning the updated row. Deleting an already-deleted
// category reports ErrCategoryNotFound.
func (r *GORMCategoryRepository) SoftDelete(id int) (*models.Category, error) {
	res := r.db.Model(&models.Category{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete category %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrCategoryNotFound
	}

	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload category %d: %w", id, err)
	}
	return &category, nil
}
