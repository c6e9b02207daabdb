package handlers

import (
	"log"
	"strings"

	"shopadmin/internal/models"
	"shopadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for the sign-in glue.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// HandleRegister registers a new dashboard user.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing register body: %v", err)
		return respondFailure(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := h.validate.Struct(user); err != nil {
		return respondFailure(c, fiber.StatusBadRequest, "Validation failed", validationReason(err))
	}

	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		if strings.Contains(err.Error(), "already taken") || strings.Contains(err.Error(), "already registered") {
			return respondFailure(c, fiber.StatusConflict, "Registration failed", err.Error())
		}
		return respondFailure(c, fiber.StatusInternalServerError, "Could not register user", err.Error())
	}

	user.Password = ""
	return respondSuccess(c, fiber.StatusCreated, "User registered successfully", user)
}

// LoginRequest is the body for credential login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user and issues a JWT.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login body: %v", err)
		return respondFailure(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return respondFailure(c, fiber.StatusBadRequest, "Validation failed", validationReason(err))
	}

	token, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		log.Printf("Error during login for user %s: %v", req.Username, err)
		return respondFailure(c, fiber.StatusUnauthorized, "Authentication failed", err.Error())
	}

	return respondSuccess(c, fiber.StatusOK, "Login successful", fiber.Map{"token": token})
}

// HandleProfile returns the identity of the authenticated user. It sits
// behind the JWT middleware, which stores the claims in locals.
func (h *AuthHandler) HandleProfile(c *fiber.Ctx) error {
	return respondSuccess(c, fiber.StatusOK, "Profile fetched successfully", fiber.Map{
		"user_id":  c.Locals("user_id"),
		"username": c.Locals("username"),
	})
}
