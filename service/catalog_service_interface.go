package service

import (
	"context"

	"github.com/GeraldTgit/magingwais/models"
)

// CatalogServiceInterface defines the catalog operations exposed to
// the controllers
type CatalogServiceInterface interface {
	BrowseItems(ctx context.Context, filter models.CatalogFilter, actorID string) ([]models.CatalogItem, error)
	GetItem(ctx context.Context, itemID int64, actorID string) (*models.CatalogItem, error)
	CreateItem(ctx context.Context, req *models.CreateCatalogItemRequest, actorID string) (*models.CatalogItem, error)
	EnsureImage(ctx context.Context, itemID int64, actorID string) (string, error)
}
