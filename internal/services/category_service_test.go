package services_test

import (
	"fmt"
	"testing"

	"shopadmin/internal/models"
	"shopadmin/internal/repositories"
	"shopadmin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// FailingCategoryRepository is a testify mock of repositories.CategoryRepository
// used to force store-level faults.
type FailingCategoryRepository struct {
	mock.Mock
}

func (m *FailingCategoryRepository) GetAllActive() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *FailingCategoryRepository) GetActiveByID(id int) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *FailingCategoryRepository) GetActiveByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *FailingCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *FailingCategoryRepository) SoftDelete(id int) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func newCategoryService() (*services.CategoryService, *repositories.MockCategoryRepository) {
	repo := repositories.NewMockCategoryRepository()
	return services.NewCategoryService(repo, nil), repo
}

func TestCategoryService_CreateCategory(t *testing.T) {
	service, _ := newCategoryService()

	result := service.CreateCategory(1, "Books")
	assert.True(t, result.OK)
	assert.Equal(t, 1, result.Data.ID)
	assert.Equal(t, "Books", result.Data.Name)
	assert.False(t, result.Data.IsDeleted)

	listed := service.GetAllCategories()
	assert.True(t, listed.OK)
	assert.Len(t, listed.Data, 1)
}

func TestCategoryService_CreateCategory_MissingFields(t *testing.T) {
	service, _ := newCategoryService()

	result := service.CreateCategory(0, "Books")
	assert.False(t, result.OK)
	assert.Equal(t, "Category name and ID are required", result.Message)

	result = service.CreateCategory(1, "")
	assert.False(t, result.OK)
	assert.Equal(t, "Category name and ID are required", result.Message)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	service, _ := newCategoryService()

	assert.True(t, service.CreateCategory(1, "Books").OK)

	// Exact duplicate fails regardless of the supplied ID.
	result := service.CreateCategory(2, "Books")
	assert.False(t, result.OK)
	assert.Equal(t, "Category already exists", result.Message)

	// The duplicate check is case-insensitive.
	result = service.CreateCategory(3, "books")
	assert.False(t, result.OK)
	assert.Equal(t, "Category already exists", result.Message)
}

func TestCategoryService_CreateCategory_ReusesNameAfterDelete(t *testing.T) {
	service, _ := newCategoryService()

	assert.True(t, service.CreateCategory(1, "Books").OK)
	assert.True(t, service.RemoveCategory(1).OK)

	// Uniqueness only applies among non-deleted categories.
	result := service.CreateCategory(2, "Books")
	assert.True(t, result.OK)
}

func TestCategoryService_RemoveCategory_Twice(t *testing.T) {
	service, _ := newCategoryService()

	assert.True(t, service.CreateCategory(1, "Books").OK)

	first := service.RemoveCategory(1)
	assert.True(t, first.OK)
	assert.True(t, first.Data.IsDeleted)

	second := service.RemoveCategory(1)
	assert.False(t, second.OK)
	assert.Equal(t, "Category not found", second.Message)
}

func TestCategoryService_GetAllCategories_ExcludesDeleted(t *testing.T) {
	service, _ := newCategoryService()

	assert.True(t, service.CreateCategory(1, "Books").OK)
	assert.True(t, service.CreateCategory(2, "Clothing").OK)
	assert.True(t, service.RemoveCategory(1).OK)

	listed := service.GetAllCategories()
	assert.True(t, listed.OK)
	assert.Len(t, listed.Data, 1)
	assert.Equal(t, "Clothing", listed.Data[0].Name)
}

func TestCategoryService_GetAllCategories_FailsOpenOnStoreFault(t *testing.T) {
	mockRepo := new(FailingCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	mockRepo.On("GetAllActive").Return(nil, fmt.Errorf("connection refused")).Once()

	result := service.GetAllCategories()
	assert.False(t, result.OK)
	assert.Equal(t, "Failed to fetch categories", result.Message)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_StoreFault(t *testing.T) {
	mockRepo := new(FailingCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	mockRepo.On("GetActiveByName", "Books").Return(nil, repositories.ErrCategoryNotFound).Once()
	mockRepo.On("Create", mock.Anything).Return(fmt.Errorf("constraint violation")).Once()

	result := service.CreateCategory(1, "Books")
	assert.False(t, result.OK)
	assert.Equal(t, "Failed to create category", result.Message)
	mockRepo.AssertExpectations(t)
}
