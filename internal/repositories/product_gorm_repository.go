package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shopadmin/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAllActive retrieves non-deleted products matching the filters, newest
// first, with the category association loaded. Search matches the product
// name as a case-insensitive substring.
func (r *GORMProductRepository) GetAllActive(filters ProductFilters) ([]models.Product, error) {
	query := r.db.
		Preload("Category").
		Where("is_deleted = ?", false)

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetActiveByID retrieves a non-deleted product by its ID with the category
// association loaded.
func (r *GORMProductRepository) GetActiveByID(id int) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Category").
		First(&product, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create persists a new product and reloads it so the caller gets the
// generated ID and the joined category back.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Omit("Category").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	if err := r.db.Preload("Category").First(product, "id = ?", product.ID).Error; err != nil {
		return fmt.Errorf("failed to reload product %d: %w", product.ID, err)
	}
	return nil
}

// UpdateFields applies a partial update to a non-deleted product and returns
// the updated row. Callers supply only the columns that changed; updated_at
// is expected to be among them.
func (r *GORMProductRepository) UpdateFields(id int, fields map[string]interface{}) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}
	return r.GetActiveByID(id)
}

// SoftDelete flags a non-deleted product as deleted and refreshes its
// updatedAt, returning the updated row with its category.
func (r *GORMProductRepository) SoftDelete(id int) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}

	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product %d: %w", id, err)
	}
	return &product, nil
}
