package service

import (
	"context"

	"github.com/GeraldTgit/magingwais/models"
)

// ListServiceInterface defines the list and line item operations
// exposed to the presentation layer. Every mutation takes the actor's
// user id explicitly; there is no ambient session state.
type ListServiceInterface interface {
	CreateList(ctx context.Context, req *models.CreateListRequest, actorID string) (*models.ShoppingList, error)
	BrowseLists(ctx context.Context, filter models.ListFilter, actorID string) ([]models.ShoppingListSummary, error)
	GetList(ctx context.Context, listID int64, actorID string) (*models.ShoppingListDetail, error)
	UpdateList(ctx context.Context, listID int64, req *models.UpdateListRequest, actorID string) (*models.ShoppingList, error)
	SetBudget(ctx context.Context, listID int64, budget *float64, actorID string) (*models.ShoppingList, error)
	DeleteList(ctx context.Context, listID int64, actorID string) error
	DuplicateList(ctx context.Context, sourceID int64, actorID string) (*models.ShoppingList, error)

	AddItemToList(ctx context.Context, listID int64, itemID int64, actorID string) (*models.AddItemToListResponse, error)
	SetQuantity(ctx context.Context, lineID int64, quantity int, actorID string) (*models.LineItem, error)
	SetActualPrice(ctx context.Context, lineID int64, price *float64, actorID string) (*models.LineItem, error)
	ToggleBought(ctx context.Context, lineID int64, actorID string) (*models.LineItem, error)
	UpdateLineItem(ctx context.Context, lineID int64, req *models.UpdateLineItemRequest, actorID string) (*models.LineItem, error)
	RemoveLineItem(ctx context.Context, lineID int64, actorID string) error
}
