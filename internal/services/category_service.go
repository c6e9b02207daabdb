package services

import (
	"errors"
	"log"

	"shopadmin/internal/models"
	"shopadmin/internal/repositories"
	"shopadmin/pkg/rabbitmq"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
	mq   *rabbitmq.Client
}

// NewCategoryService creates a new CategoryService. The RabbitMQ client may
// be nil to disable event publishing.
func NewCategoryService(repo repositories.CategoryRepository, mq *rabbitmq.Client) *CategoryService {
	return &CategoryService{
		repo: repo,
		mq:   mq,
	}
}

// GetAllCategories retrieves all non-deleted categories, newest first.
// Store faults are logged and converted to an Err result; they never
// propagate to the caller.
func (s *CategoryService) GetAllCategories() Result[[]models.Category] {
	categories, err := s.repo.GetAllActive()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		return Err[[]models.Category]("Failed to fetch categories")
	}
	return Ok("Categories fetched successfully", categories)
}

// CreateCategory creates a category with a caller-supplied ID. The name
// must not already be in use by another non-deleted category; the match is
// case-insensitive.
func (s *CategoryService) CreateCategory(id int, name string) Result[models.Category] {
	if id == 0 || name == "" {
		return Err[models.Category]("Category name and ID are required")
	}

	existing, err := s.repo.GetActiveByName(name)
	if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		log.Printf("Error checking category name %q: %v", name, err)
		return Err[models.Category]("Failed to create category")
	}
	if existing != nil {
		return Err[models.Category]("Category already exists")
	}

	category := &models.Category{ID: id, Name: name}
	if err := s.repo.Create(category); err != nil {
		log.Printf("Error creating category: %v", err)
		return Err[models.Category]("Failed to create category")
	}

	publishEvent(s.mq, "category.created", category)
	return Ok("Category created successfully", *category)
}

// RemoveCategory soft-deletes a non-deleted category. A second delete of
// the same category fails because the row is no longer visible.
func (s *CategoryService) RemoveCategory(id int) Result[models.Category] {
	if id == 0 {
		return Err[models.Category]("Category ID is required")
	}

	category, err := s.repo.SoftDelete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return Err[models.Category]("Category not found")
		}
		log.Printf("Error deleting category %d: %v", id, err)
		return Err[models.Category]("Failed to delete category")
	}

	publishEvent(s.mq, "category.deleted", category)
	return Ok("Category deleted successfully", *category)
}
