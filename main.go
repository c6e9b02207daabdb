package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shopadmin/internal/handlers"
	"shopadmin/internal/middleware"
	"shopadmin/internal/models"
	"shopadmin/internal/repositories"
	"shopadmin/internal/services"
	"shopadmin/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// .env first (ignored if absent), then environment variables via Viper.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "shopadmin.db")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SEED_CATEGORIES", true)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Catalog mutations publish events when a broker URL is configured.
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, catalog event publishing disabled")
	}

	// --- Repositories ---
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	if viper.GetBool("SEED_CATEGORIES") {
		seedCategories(db)
	}

	// --- Services ---
	categoryService := services.NewCategoryService(categoryRepo, mqClient)
	productService := services.NewProductService(productRepo, categoryRepo, mqClient)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))

	// --- Handlers ---
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ServerError,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	categoryHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1)
	apiV1.Get("/profile", middleware.AuthRequired(authService), authHandler.HandleProfile)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Catalog Event Consumer ---
	if mqClient != nil {
		log.Println("Starting catalog event consumer...")
		err := mqClient.ConsumeCatalogEvents(func(msg amqp.Delivery) error {
			log.Printf("Catalog event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		})
		if err != nil {
			log.Printf("Failed to start catalog event consumer: %v", err)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	log.Println("Server gracefully stopped")
}

// openDatabase picks the GORM driver from the DSN shape: postgres for
// key=value or postgres:// DSNs, sqlite for anything else (a file path).
func openDatabase(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "host=") || strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// seedCategories ensures the stock set of dashboard categories exists.
// Existing rows are left untouched.
func seedCategories(db *gorm.DB) {
	defaults := []models.Category{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Clothing"},
		{ID: 3, Name: "Books"},
		{ID: 4, Name: "Home & Garden"},
		{ID: 5, Name: "Sports & Fitness"},
		{ID: 6, Name: "Beauty & Health"},
		{ID: 7, Name: "Toys & Games"},
		{ID: 8, Name: "Automotive"},
	}
	for i := range defaults {
		err := db.Where("id = ?", defaults[i].ID).FirstOrCreate(&defaults[i]).Error
		if err != nil {
			log.Printf("Error seeding category %s: %v", defaults[i].Name, err)
		}
	}
}
