package repository

import (
	"context"

	"github.com/GeraldTgit/magingwais/models"
)

// ShoppingListRepositoryInterface defines the contract for shopping list persistence
type ShoppingListRepositoryInterface interface {
	Create(ctx context.Context, name string, ownerID string, isPublic bool, budget *float64) (*models.ShoppingList, error)
	GetByID(ctx context.Context, id int64) (*models.ShoppingList, error)
	GetSummaries(ctx context.Context, filter models.ListFilter, actorID string) ([]models.ShoppingListSummary, error)
	Update(ctx context.Context, id int64, name *string, isPublic *bool) (*models.ShoppingList, error)
	SetBudget(ctx context.Context, id int64, budget *float64) (*models.ShoppingList, error)
	Delete(ctx context.Context, id int64) error
	Duplicate(ctx context.Context, sourceID int64, newOwnerID string) (*models.ShoppingList, error)
}

// LineItemRepositoryInterface defines the contract for list item persistence
type LineItemRepositoryInterface interface {
	ListByListID(ctx context.Context, listID int64) ([]models.LineItem, error)
	GetByID(ctx context.Context, id int64) (*models.LineItem, error)
	UpsertFromCatalog(ctx context.Context, listID int64, item *models.CatalogItem) (*models.LineItem, bool, error)
	SetQuantity(ctx context.Context, id int64, quantity int) (*models.LineItem, error)
	SetActualPrice(ctx context.Context, id int64, price *float64) (*models.LineItem, error)
	ToggleBought(ctx context.Context, id int64) (*models.LineItem, error)
	Update(ctx context.Context, id int64, req *models.UpdateLineItemRequest) (*models.LineItem, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogItemRepositoryInterface defines the contract for catalog item persistence
type CatalogItemRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*models.CatalogItem, error)
	Filter(ctx context.Context, filter models.CatalogFilter, actorID string) ([]models.CatalogItem, error)
	Create(ctx context.Context, req *models.CreateCatalogItemRequest, actorID string) (*models.CatalogItem, error)
	SetImageURL(ctx context.Context, id int64, imageURL string) error
}

// UserRepositoryInterface defines the contract for user persistence
type UserRepositoryInterface interface {
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
}
