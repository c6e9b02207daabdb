package handlers

import (
	"log"

	"shopadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleGetCategories)
	router.Post("/category", h.HandleCreateCategory)
	router.Delete("/category/:id", h.HandleDeleteCategory)
}

// HandleGetCategories lists all non-deleted categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	result := h.service.GetAllCategories()
	if !result.OK {
		return respondFailure(c, fiber.StatusNotFound, "No categories found", "Categories not found")
	}
	return respondSuccess(c, fiber.StatusOK, "Categories fetched successfully", result.Data)
}

// CreateCategoryRequest is the body for category creation. The ID comes
// from the caller; zero is treated as missing.
type CreateCategoryRequest struct {
	ID   int    `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create category body: %v", err)
		return respondFailure(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return respondFailure(c, fiber.StatusBadRequest, "Validation failed", validationReason(err))
	}

	result := h.service.CreateCategory(req.ID, req.Name)
	if !result.OK {
		return respondFailure(c, fiber.StatusBadRequest, "Category creation failed", result.Message)
	}
	return respondSuccess(c, fiber.StatusCreated, "Category created successfully", result.Data)
}

// HandleDeleteCategory soft-deletes a category.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondFailure(c, fiber.StatusBadRequest, "Validation failed", "id must be an integer")
	}

	result := h.service.RemoveCategory(id)
	if !result.OK {
		return respondFailure(c, fiber.StatusBadRequest, "Category deletion failed", result.Message)
	}
	return respondSuccess(c, fiber.StatusOK, "Category deleted successfully", result.Data)
}
