package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"shopadmin/internal/models"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[int]models.Category
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[int]models.Category),
	}
}

// GetAllActive returns all non-deleted categories, newest first.
func (r *MockCategoryRepository) GetAllActive() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoryList := make([]models.Category, 0, len(r.categories))
	for _, category := range r.categories {
		if !category.IsDeleted {
			categoryList = append(categoryList, category)
		}
	}
	sort.Slice(categoryList, func(i, j int) bool {
		if categoryList[i].CreatedAt.Equal(categoryList[j].CreatedAt) {
			return categoryList[i].ID > categoryList[j].ID
		}
		return categoryList[i].CreatedAt.After(categoryList[j].CreatedAt)
	})
	return categoryList, nil
}

// GetActiveByID returns a non-deleted category by its ID.
func (r *MockCategoryRepository) GetActiveByID(id int) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok || category.IsDeleted {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

// GetActiveByName returns a non-deleted category by name, case-insensitively.
func (r *MockCategoryRepository) GetActiveByName(name string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, category := range r.categories {
		if !category.IsDeleted && strings.EqualFold(category.Name, name) {
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// Create adds a new category with the caller-supplied ID.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[category.ID]; exists {
		return fmt.Errorf("category with ID %d already exists", category.ID)
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	r.categories[category.ID] = *category
	return nil
}

// SoftDelete flags a non-deleted category as deleted.
func (r *MockCategoryRepository) SoftDelete(id int) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok || category.IsDeleted {
		return nil, ErrCategoryNotFound
	}
	category.IsDeleted = true
	category.UpdatedAt = time.Now()
	r.categories[id] = category
	return &category, nil
}

// get returns a category regardless of its deletion flag. Used by the
// product mock to populate the joined category the way the store would.
func (r *MockCategoryRepository) get(id int) (models.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	return category, ok
}
