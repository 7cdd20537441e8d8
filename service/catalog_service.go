package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/GeraldTgit/magingwais/models"
	"github.com/GeraldTgit/magingwais/repository"
)

// CatalogService handles catalog browsing and item creation plus the
// product image lookup pipeline.
type CatalogService struct {
	catalog     repository.CatalogItemRepositoryInterface
	imageSearch ImageSearchServiceInterface
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalog repository.CatalogItemRepositoryInterface, imageSearch ImageSearchServiceInterface) *CatalogService {
	return &CatalogService{
		catalog:     catalog,
		imageSearch: imageSearch,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// BrowseItems returns the actor's items or the public catalog,
// filtered and sorted per request
func (s *CatalogService) BrowseItems(ctx context.Context, filter models.CatalogFilter, actorID string) ([]models.CatalogItem, error) {
	return s.catalog.Filter(ctx, filter, actorID)
}

// GetItem returns a catalog item the actor may read
func (s *CatalogService) GetItem(ctx context.Context, itemID int64, actorID string) (*models.CatalogItem, error) {
	item, err := s.catalog.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsPublic && item.AddedBy != actorID {
		return nil, fmt.Errorf("catalog item %d is private: %w", itemID, models.ErrForbidden)
	}
	return item, nil
}

// CreateItem validates and inserts a new catalog item added by the actor
func (s *CatalogService) CreateItem(ctx context.Context, req *models.CreateCatalogItemRequest, actorID string) (*models.CatalogItem, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("item name cannot be empty: %w", models.ErrInvalidArgument)
	}
	if req.SRP != nil && *req.SRP < 0 {
		return nil, fmt.Errorf("srp must not be negative: %w", models.ErrInvalidArgument)
	}
	return s.catalog.Create(ctx, req, actorID)
}

// EnsureImage returns the item's product image URL, looking one up
// through the image search service and persisting it when the item has
// none yet. Only the item's creator may trigger a lookup.
func (s *CatalogService) EnsureImage(ctx context.Context, itemID int64, actorID string) (string, error) {
	item, err := s.catalog.GetByID(ctx, itemID)
	if err != nil {
		return "", err
	}
	if item.ImageURL != "" {
		return item.ImageURL, nil
	}
	if item.AddedBy != actorID {
		return "", fmt.Errorf("catalog item %d is not owned by %s: %w", itemID, actorID, models.ErrForbidden)
	}

	query := item.Name
	if item.Brand != "" {
		query += " " + item.Brand
	}

	imageURL, err := s.imageSearch.SearchProductImage(ctx, query)
	if err != nil {
		return "", err
	}
	if imageURL == "" {
		return "", fmt.Errorf("no product image found for item %d: %w", itemID, models.ErrNotFound)
	}

	if err := s.catalog.SetImageURL(ctx, itemID, imageURL); err != nil {
		return "", err
	}

	log.Printf("✅ EnsureImage: Stored image for item id=%d", itemID)
	return imageURL, nil
}
