package repositories_test

import (
	"testing"
	"time"

	"shopadmin/internal/models"
	"shopadmin/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) (*repositories.GORMProductRepository, *repositories.GORMCategoryRepository) {
	t.Helper()
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	assert.NoError(t, categoryRepo.Create(&models.Category{ID: 1, Name: "Electronics"}))
	assert.NoError(t, categoryRepo.Create(&models.Category{ID: 2, Name: "Clothing"}))

	now := time.Now()
	products := []models.Product{
		{Name: "Smartphone", CategoryID: 1, Price: 499.99, Stock: 5, CreatedAt: now.Add(-2 * time.Hour)},
		{Name: "Phone Case", CategoryID: 2, Price: 9.99, Stock: 50, CreatedAt: now.Add(-time.Hour)},
		{Name: "Laptop", CategoryID: 1, Price: 1299.99, Stock: 3, CreatedAt: now},
	}
	for i := range products {
		assert.NoError(t, productRepo.Create(&products[i]))
	}
	return productRepo, categoryRepo
}

func TestGORMProductRepository_Create_JoinsCategory(t *testing.T) {
	db := openTestDB(t)
	productRepo, _ := seedCatalog(t, db)

	product := models.Product{Name: "Headphones", CategoryID: 1, Price: 59.99}
	assert.NoError(t, productRepo.Create(&product))
	assert.NotZero(t, product.ID)
	assert.Equal(t, "Electronics", product.Category.Name)
	assert.Equal(t, 1, product.Category.ID)
}

func TestGORMProductRepository_GetAllActive_Filters(t *testing.T) {
	db := openTestDB(t)
	productRepo, _ := seedCatalog(t, db)

	// Newest first, all three.
	all, err := productRepo.GetAllActive(repositories.ProductFilters{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Laptop", all[0].Name)
	assert.Equal(t, "Smartphone", all[2].Name)
	assert.Equal(t, "Electronics", all[0].Category.Name)

	// Case-insensitive substring search.
	matched, err := productRepo.GetAllActive(repositories.ProductFilters{Search: "PHONE"})
	assert.NoError(t, err)
	assert.Len(t, matched, 2)

	// Category filter alone.
	categoryID := 1
	matched, err = productRepo.GetAllActive(repositories.ProductFilters{CategoryID: &categoryID})
	assert.NoError(t, err)
	assert.Len(t, matched, 2)

	// Both filters combine with AND.
	matched, err = productRepo.GetAllActive(repositories.ProductFilters{CategoryID: &categoryID, Search: "phone"})
	assert.NoError(t, err)
	assert.Len(t, matched, 1)
	assert.Equal(t, "Smartphone", matched[0].Name)
}

func TestGORMProductRepository_GetAllActive_ExcludesDeleted(t *testing.T) {
	db := openTestDB(t)
	productRepo, _ := seedCatalog(t, db)

	all, err := productRepo.GetAllActive(repositories.ProductFilters{})
	assert.NoError(t, err)
	_, err = productRepo.SoftDelete(all[0].ID)
	assert.NoError(t, err)

	remaining, err := productRepo.GetAllActive(repositories.ProductFilters{})
	assert.NoError(t, err)
	assert.Len(t, remaining, 2)
	for _, product := range remaining {
		assert.NotEqual(t, all[0].ID, product.ID)
	}
}

func TestGORMProductRepository_UpdateFields_Partial(t *testing.T) {
	db := openTestDB(t)
	productRepo, _ := seedCatalog(t, db)

	product := models.Product{Name: "Monitor", CategoryID: 1, Price: 199.99, Stock: 4}
	assert.NoError(t, productRepo.Create(&product))

	updated, err := productRepo.UpdateFields(product.ID, map[string]interface{}{
		"stock":      9,
		"updated_at": time.Now().Add(time.Second),
	})
	assert.NoError(t, err)
	assert.Equal(t, 9, updated.Stock)
	assert.Equal(t, "Monitor", updated.Name)
	assert.Equal(t, 199.99, updated.Price)
	assert.NotEqual(t, product.UpdatedAt, updated.UpdatedAt)
	assert.Equal(t, "Electronics", updated.Category.Name)
}

func TestGORMProductRepository_UpdateFields_NotFound(t *testing.T) {
	db := openTestDB(t)
	productRepo, _ := seedCatalog(t, db)

	_, err := productRepo.UpdateFields(999, map[string]interface{}{
		"stock":      1,
		"updated_at": time.Now(),
	})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestGORMProductRepository_SoftDelete_Twice(t *testing.T) {
	db := openTestDB(t)
	productRepo, _ := seedCatalog(t, db)

	product := models.Product{Name: "Webcam", CategoryID: 1, Price: 39.99}
	assert.NoError(t, productRepo.Create(&product))

	deleted, err := productRepo.SoftDelete(product.ID)
	assert.NoError(t, err)
	assert.True(t, deleted.IsDeleted)

	_, err = productRepo.SoftDelete(product.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	_, err = productRepo.GetActiveByID(product.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
