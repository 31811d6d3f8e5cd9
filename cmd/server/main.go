package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ostrovskiy/construction-supervision-api/internal/config"
	"github.com/ostrovskiy/construction-supervision-api/internal/database"
	"github.com/ostrovskiy/construction-supervision-api/internal/handlers"
	"github.com/ostrovskiy/construction-supervision-api/internal/repository"
	"github.com/ostrovskiy/construction-supervision-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Provision schema
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	objectRepo := repository.NewConstructionObjectRepository(db)
	violationRepo := repository.NewViolationRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	objectService := services.NewConstructionObjectService(objectRepo)
	violationService := services.NewViolationService(violationRepo, objectRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	objectHandler := handlers.NewConstructionObjectHandler(objectService)
	violationHandler := handlers.NewViolationHandler(violationService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Construction Supervision API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.RegisterUser)
		}

		objects := api.Group("/construction-objects")
		{
			objects.POST("", objectHandler.RegisterConstructionObject)
			objects.GET("", objectHandler.ListConstructionObjects)
			objects.GET("/:id/violations", violationHandler.ListViolationsByConstructionObject)
		}

		contractors := api.Group("/contractors")
		{
			contractors.GET("/:id/violations", violationHandler.ListViolationsByContractor)
		}

		violations := api.Group("/violations")
		{
			violations.POST("", violationHandler.RegisterViolation)
			violations.GET("/:id", violationHandler.GetViolation)
			violations.PATCH("/:id/status", violationHandler.UpdateViolationStatus)
			violations.DELETE("/:id", violationHandler.DeleteViolation)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}

	// Ephemeral deployments tear their schema down on exit
	if cfg.EphemeralStorage {
		if err := database.Drop(); err != nil {
			log.Printf("Failed to drop tables: %v", err)
		}
	}
}
