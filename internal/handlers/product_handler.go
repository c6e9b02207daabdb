package handlers

import (
	"log"
	"strconv"

	"shopadmin/internal/repositories"
	"shopadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/product/:id", h.HandleGetProduct)
	router.Post("/product", h.HandleCreateProduct)
	router.Put("/product/:id", h.HandleUpdateProduct)
	router.Delete("/product/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists non-deleted products, optionally filtered by
// exact categoryId and/or a case-insensitive name search. The query types
// are validated: a non-integer categoryId is rejected rather than ignored.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	var filters repositories.ProductFilters

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			return respondFailure(c, fiber.StatusBadRequest, "Validation failed", "categoryId must be an integer")
		}
		filters.CategoryID = &categoryID
	}
	filters.Search = c.Query("search")

	result := h.service.GetProducts(filters)
	if !result.OK {
		return respondFailure(c, fiber.StatusNotFound, "No products found", "Products not found")
	}
	return respondSuccess(c, fiber.StatusOK, "Products fetched successfully", newProductResponses(result.Data))
}

// HandleGetProduct retrieves a single product by ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondFailure(c, fiber.StatusBadRequest, "Validation failed", "id must be an integer")
	}

	result := h.service.GetProductByID(id)
	if !result.OK {
		return respondFailure(c, fiber.StatusNotFound, "Product not found", result.Message)
	}
	return respondSuccess(c, fiber.StatusOK, "Product fetched successfully", newProductResponse(result.Data))
}

// CreateProductRequest is the body for product creation. Price uses the
// required tag, so a price of exactly 0 fails validation as missing.
type CreateProductRequest struct {
	Name       string  `json:"name" validate:"required"`
	CategoryID int     `json:"categoryId" validate:"required"`
	Price      float64 `json:"price" validate:"required"`
	Stock      int     `json:"stock" validate:"gte=0"`
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return respondFailure(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return respondFailure(c, fiber.StatusBadRequest, "Validation failed", validationReason(err))
	}

	result := h.service.CreateProduct(services.CreateProductInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Stock:      req.Stock,
	})
	if !result.OK {
		return respondFailure(c, fiber.StatusBadRequest, "Product creation failed", result.Message)
	}
	return respondSuccess(c, fiber.StatusCreated, "Product created successfully", newProductResponse(result.Data))
}

// UpdateProductRequest is the body for a partial product update; absent
// fields stay nil and are left unchanged.
type UpdateProductRequest struct {
	Name       *string  `json:"name"`
	CategoryID *int     `json:"categoryId"`
	Price      *float64 `json:"price"`
	Stock      *int     `json:"stock"`
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondFailure(c, fiber.StatusBadRequest, "Validation failed", "id must be an integer")
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product body: %v", err)
		return respondFailure(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	result := h.service.ModifyProduct(id, services.UpdateProductInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Stock:      req.Stock,
	})
	if !result.OK {
		return respondFailure(c, fiber.StatusBadRequest, "Product update failed", result.Message)
	}
	return respondSuccess(c, fiber.StatusOK, "Product updated successfully", newProductResponse(result.Data))
}

// HandleDeleteProduct soft-deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondFailure(c, fiber.StatusBadRequest, "Validation failed", "id must be an integer")
	}

	result := h.service.RemoveProduct(id)
	if !result.OK {
		return respondFailure(c, fiber.StatusBadRequest, "Product deletion failed", result.Message)
	}
	return respondSuccess(c, fiber.StatusOK, "Product deleted successfully", newProductResponse(result.Data))
}
