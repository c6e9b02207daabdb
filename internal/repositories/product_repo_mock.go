package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"shopadmin/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// When linked to a MockCategoryRepository it populates the joined category
// on reads, mirroring what the GORM implementation preloads.
type MockProductRepository struct {
	products   map[int]models.Product
	categories *MockCategoryRepository
	nextID     int
	mu         sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
// The category repository may be nil; joined categories are then left empty.
func NewMockProductRepository(categories *MockCategoryRepository) *MockProductRepository {
	return &MockProductRepository{
		products:   make(map[int]models.Product),
		categories: categories,
		nextID:     1,
	}
}

func (r *MockProductRepository) join(product models.Product) models.Product {
	if r.categories != nil {
		if category, ok := r.categories.get(product.CategoryID); ok {
			product.Category = category
		}
	}
	return product
}

// GetAllActive returns non-deleted products matching the filters, newest first.
func (r *MockProductRepository) GetAllActive(filters ProductFilters) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		if product.IsDeleted {
			continue
		}
		if filters.CategoryID != nil && product.CategoryID != *filters.CategoryID {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filters.Search)) {
			continue
		}
		productList = append(productList, r.join(product))
	}
	sort.Slice(productList, func(i, j int) bool {
		if productList[i].CreatedAt.Equal(productList[j].CreatedAt) {
			return productList[i].ID > productList[j].ID
		}
		return productList[i].CreatedAt.After(productList[j].CreatedAt)
	})
	return productList, nil
}

// GetActiveByID returns a non-deleted product by its ID.
func (r *MockProductRepository) GetActiveByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok || product.IsDeleted {
		return nil, ErrProductNotFound
	}
	joined := r.join(product)
	return &joined, nil
}

// Create adds a new product, assigning the next auto-increment ID.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = *product
	*product = r.join(*product)
	return nil
}

// UpdateFields applies a partial update to a non-deleted product.
func (r *MockProductRepository) UpdateFields(id int, fields map[string]interface{}) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok || product.IsDeleted {
		return nil, ErrProductNotFound
	}
	for column, value := range fields {
		switch column {
		case "name":
			product.Name = value.(string)
		case "category_id":
			product.CategoryID = value.(int)
		case "price":
			product.Price = value.(float64)
		case "stock":
			product.Stock = value.(int)
		case "updated_at":
			product.UpdatedAt = value.(time.Time)
		}
	}
	r.products[id] = product
	joined := r.join(product)
	return &joined, nil
}

// SoftDelete flags a non-deleted product as deleted.
func (r *MockProductRepository) SoftDelete(id int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok || product.IsDeleted {
		return nil, ErrProductNotFound
	}
	product.IsDeleted = true
	product.UpdatedAt = time.Now()
	r.products[id] = product
	joined := r.join(product)
	return &joined, nil
}
