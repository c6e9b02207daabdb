package services

import (
	"errors"
	"log"
	"time"

	"shopadmin/internal/models"
	"shopadmin/internal/repositories"
	"shopadmin/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	mq           *rabbitmq.Client
}

// NewProductService creates a new ProductService. The RabbitMQ client may
// be nil to disable event publishing.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, mq *rabbitmq.Client) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		mq:           mq,
	}
}

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name       string
	CategoryID int
	Price      float64
	Stock      int
}

// UpdateProductInput carries a partial product update; nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name       *string
	CategoryID *int
	Price      *float64
	Stock      *int
}

// GetProducts retrieves non-deleted products matching the filters, newest
// first, with the joined category. Store faults are logged and converted to
// an Err result.
func (s *ProductService) GetProducts(filters repositories.ProductFilters) Result[[]models.Product] {
	products, err := s.productRepo.GetAllActive(filters)
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return Err[[]models.Product]("Failed to fetch products")
	}
	return Ok("Products fetched successfully", products)
}

// GetProductByID retrieves a single non-deleted product.
func (s *ProductService) GetProductByID(id int) Result[models.Product] {
	if id == 0 {
		return Err[models.Product]("Product ID is required")
	}

	product, err := s.productRepo.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return Err[models.Product]("Product not found")
		}
		log.Printf("Error fetching product %d: %v", id, err)
		return Err[models.Product]("Failed to fetch product")
	}
	return Ok("Product fetched successfully", *product)
}

// CreateProduct creates a product after verifying the referenced category
// exists and is not deleted. Stock defaults to zero. A price of exactly 0
// is treated as missing.
func (s *ProductService) CreateProduct(input CreateProductInput) Result[models.Product] {
	if input.Name == "" || input.CategoryID == 0 || input.Price == 0 {
		return Err[models.Product]("Product name, categoryId, and price are required")
	}

	if _, err := s.categoryRepo.GetActiveByID(input.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return Err[models.Product]("Category not found")
		}
		log.Printf("Error checking category %d: %v", input.CategoryID, err)
		return Err[models.Product]("Failed to create product")
	}

	product := &models.Product{
		Name:       input.Name,
		CategoryID: input.CategoryID,
		Price:      input.Price,
		Stock:      input.Stock,
	}
	if err := s.productRepo.Create(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return Err[models.Product]("Failed to create product")
	}

	publishEvent(s.mq, "product.created", product)
	return Ok("Product created successfully", *product)
}

// ModifyProduct applies a partial update to a non-deleted product. Only
// supplied fields change; updatedAt always refreshes. A supplied categoryId
// must reference a non-deleted category.
func (s *ProductService) ModifyProduct(id int, input UpdateProductInput) Result[models.Product] {
	if id == 0 {
		return Err[models.Product]("Product ID is required")
	}

	if _, err := s.productRepo.GetActiveByID(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return Err[models.Product]("Product not found")
		}
		log.Printf("Error fetching product %d: %v", id, err)
		return Err[models.Product]("Failed to update product")
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetActiveByID(*input.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return Err[models.Product]("Category not found")
			}
			log.Printf("Error checking category %d: %v", *input.CategoryID, err)
			return Err[models.Product]("Failed to update product")
		}
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}

	product, err := s.productRepo.UpdateFields(id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return Err[models.Product]("Product not found")
		}
		log.Printf("Error updating product %d: %v", id, err)
		return Err[models.Product]("Failed to update product")
	}

	publishEvent(s.mq, "product.updated", product)
	return Ok("Product updated successfully", *product)
}

// RemoveProduct soft-deletes a non-deleted product.
func (s *ProductService) RemoveProduct(id int) Result[models.Product] {
	if id == 0 {
		return Err[models.Product]("Product ID is required")
	}

	product, err := s.productRepo.SoftDelete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return Err[models.Product]("Product not found")
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return Err[models.Product]("Failed to delete product")
	}

	publishEvent(s.mq, "product.deleted", product)
	return Ok("Product deleted successfully", *product)
}
