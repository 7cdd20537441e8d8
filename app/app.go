package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/GeraldTgit/magingwais/app/controller"
	"github.com/GeraldTgit/magingwais/app/router"
	"github.com/GeraldTgit/magingwais/db"
	"github.com/GeraldTgit/magingwais/repository"
	"github.com/GeraldTgit/magingwais/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	if googleClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID environment variable is not set")
	}

	jwtSecret := os.Getenv("SESSION_JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("SESSION_JWT_SECRET environment variable is not set")
	}

	// Initialize repositories
	listRepo := repository.NewShoppingListRepository()
	lineItemRepo := repository.NewLineItemRepository()
	catalogRepo := repository.NewCatalogItemRepository()
	userRepo := repository.NewUserRepository()

	// Initialize services
	authService := service.NewAuthService(
		service.NewGoogleTokenVerifier(googleClientID),
		userRepo,
		[]byte(jwtSecret),
	)
	listService := service.NewListService(listRepo, lineItemRepo, catalogRepo, userRepo)
	exportService := service.NewExportService(listService)

	// Image search is optional: without API credentials the lookup
	// endpoint reports the search as unavailable, everything else works.
	var imageSearch service.ImageSearchServiceInterface
	apiKey := os.Getenv("GOOGLE_API_KEY")
	cseID := os.Getenv("GOOGLE_CSE_ID")
	if apiKey != "" && cseID != "" {
		var err error
		imageSearch, err = service.NewImageSearchService(context.Background(), apiKey, cseID)
		if err != nil {
			return fmt.Errorf("failed to initialize image search: %w", err)
		}
	} else {
		log.Printf("⚠️ GOOGLE_API_KEY / GOOGLE_CSE_ID not set, image lookup disabled")
		imageSearch = service.DisabledImageSearch{}
	}
	catalogService := service.NewCatalogService(catalogRepo, imageSearch)

	if err := service.EnsureImageCacheDir(); err != nil {
		return err
	}

	// Create controllers
	controllers := &router.Controllers{
		Auth: controller.NewAuthController(authService),
		List: controller.NewListController(authService, listService, exportService),
		Item: controller.NewItemController(authService, catalogService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
