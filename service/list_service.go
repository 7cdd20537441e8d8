package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/GeraldTgit/magingwais/models"
	"github.com/GeraldTgit/magingwais/pricing"
	"github.com/GeraldTgit/magingwais/repository"
)

// ListService is the reconciliation engine: it owns the ownership and
// visibility policy, validates input before any store call, merges
// catalog items into lists without duplication, and derives the list
// aggregates from current line state.
type ListService struct {
	lists     repository.ShoppingListRepositoryInterface
	lineItems repository.LineItemRepositoryInterface
	catalog   repository.CatalogItemRepositoryInterface
	users     repository.UserRepositoryInterface
}

// NewListService creates a new ListService
func NewListService(
	lists repository.ShoppingListRepositoryInterface,
	lineItems repository.LineItemRepositoryInterface,
	catalog repository.CatalogItemRepositoryInterface,
	users repository.UserRepositoryInterface,
) *ListService {
	return &ListService{
		lists:     lists,
		lineItems: lineItems,
		catalog:   catalog,
		users:     users,
	}
}

// Ensure ListService implements ListServiceInterface
var _ ListServiceInterface = (*ListService)(nil)

// ownedList resolves a list and checks that actorID owns it.
func (s *ListService) ownedList(ctx context.Context, listID int64, actorID string) (*models.ShoppingList, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.UserID != actorID {
		return nil, fmt.Errorf("list %d is not owned by %s: %w", listID, actorID, models.ErrForbidden)
	}
	return list, nil
}

// ownedLine resolves a line item through its parent list and checks
// that actorID owns that list.
func (s *ListService) ownedLine(ctx context.Context, lineID int64, actorID string) (*models.LineItem, error) {
	line, err := s.lineItems.GetByID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedList(ctx, line.ListID, actorID); err != nil {
		return nil, err
	}
	return line, nil
}

// readableList resolves a list and checks that actorID may read it:
// public lists are readable by any authenticated user, private ones
// only by their owner.
func (s *ListService) readableList(ctx context.Context, listID int64, actorID string) (*models.ShoppingList, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !list.IsPublic && list.UserID != actorID {
		return nil, fmt.Errorf("list %d is private: %w", listID, models.ErrForbidden)
	}
	return list, nil
}

func validateBudget(budget *float64) error {
	if budget != nil && *budget < 0 {
		return fmt.Errorf("budget must not be negative: %w", models.ErrInvalidArgument)
	}
	return nil
}

// CreateList creates a shopping list owned by the actor
func (s *ListService) CreateList(ctx context.Context, req *models.CreateListRequest, actorID string) (*models.ShoppingList, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("list name cannot be empty: %w", models.ErrInvalidArgument)
	}
	if err := validateBudget(req.Budget); err != nil {
		return nil, err
	}
	return s.lists.Create(ctx, name, actorID, req.IsPublic, req.Budget)
}

// BrowseLists returns the actor's lists or the public ones
func (s *ListService) BrowseLists(ctx context.Context, filter models.ListFilter, actorID string) ([]models.ShoppingListSummary, error) {
	return s.lists.GetSummaries(ctx, filter, actorID)
}

// GetList returns a readable list with its line items and aggregates.
// Total and change are recomputed from current line state on every
// call; they are never persisted.
func (s *ListService) GetList(ctx context.Context, listID int64, actorID string) (*models.ShoppingListDetail, error) {
	list, err := s.readableList(ctx, listID, actorID)
	if err != nil {
		return nil, err
	}

	lines, err := s.lineItems.ListByListID(ctx, listID)
	if err != nil {
		return nil, err
	}

	detail := &models.ShoppingListDetail{
		ShoppingList: *list,
		Items:        lines,
		Total:        pricing.ListTotal(lines),
	}
	detail.Change = pricing.Change(list.Budget, detail.Total)

	if creator, err := s.users.GetByGoogleID(ctx, list.UserID); err == nil {
		detail.CreatorNickname = creator.Nickname
	} else {
		log.Printf("⚠️ GetList: Could not resolve creator of list %d: %v", listID, err)
	}

	return detail, nil
}

// UpdateList renames a list and/or toggles its visibility, owner-only
func (s *ListService) UpdateList(ctx context.Context, listID int64, req *models.UpdateListRequest, actorID string) (*models.ShoppingList, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("list name cannot be empty: %w", models.ErrInvalidArgument)
		}
		req.Name = &trimmed
	}

	if _, err := s.ownedList(ctx, listID, actorID); err != nil {
		return nil, err
	}
	return s.lists.Update(ctx, listID, req.Name, req.IsPublic)
}

// SetBudget sets or clears the list budget, owner-only
func (s *ListService) SetBudget(ctx context.Context, listID int64, budget *float64, actorID string) (*models.ShoppingList, error) {
	if err := validateBudget(budget); err != nil {
		return nil, err
	}
	if _, err := s.ownedList(ctx, listID, actorID); err != nil {
		return nil, err
	}
	return s.lists.SetBudget(ctx, listID, budget)
}

// DeleteList removes a list and, through the store cascade, its lines
func (s *ListService) DeleteList(ctx context.Context, listID int64, actorID string) error {
	if _, err := s.ownedList(ctx, listID, actorID); err != nil {
		return err
	}
	return s.lists.Delete(ctx, listID)
}

// DuplicateList copies a readable list for the actor. The copy is
// private, named "<original> (Copy)", starts with every line unbought,
// and is fully independent of the source afterwards.
func (s *ListService) DuplicateList(ctx context.Context, sourceID int64, actorID string) (*models.ShoppingList, error) {
	if _, err := s.readableList(ctx, sourceID, actorID); err != nil {
		return nil, err
	}
	return s.lists.Duplicate(ctx, sourceID, actorID)
}

// AddItemToList merges a catalog item into the actor's list: +1 on the
// existing line for that item, or a fresh quantity-1 line carrying a
// snapshot of the item. An already-listed item is the expected merge
// path, not a conflict.
func (s *ListService) AddItemToList(ctx context.Context, listID int64, itemID int64, actorID string) (*models.AddItemToListResponse, error) {
	if _, err := s.ownedList(ctx, listID, actorID); err != nil {
		return nil, err
	}

	item, err := s.catalog.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsPublic && item.AddedBy != actorID {
		return nil, fmt.Errorf("catalog item %d is private: %w", itemID, models.ErrForbidden)
	}

	line, merged, err := s.lineItems.UpsertFromCatalog(ctx, listID, item)
	if err != nil {
		return nil, err
	}
	return &models.AddItemToListResponse{Line: line, Merged: merged}, nil
}

// SetQuantity sets a line's planned quantity, owner-only, floor 1
func (s *ListService) SetQuantity(ctx context.Context, lineID int64, quantity int, actorID string) (*models.LineItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", models.ErrInvalidArgument)
	}
	if _, err := s.ownedLine(ctx, lineID, actorID); err != nil {
		return nil, err
	}
	return s.lineItems.SetQuantity(ctx, lineID, quantity)
}

// SetActualPrice sets the owner-entered price; nil reverts the line to
// its catalog reference price
func (s *ListService) SetActualPrice(ctx context.Context, lineID int64, price *float64, actorID string) (*models.LineItem, error) {
	if price != nil && *price < 0 {
		return nil, fmt.Errorf("actual price must not be negative: %w", models.ErrInvalidArgument)
	}
	if _, err := s.ownedLine(ctx, lineID, actorID); err != nil {
		return nil, err
	}
	return s.lineItems.SetActualPrice(ctx, lineID, price)
}

// ToggleBought flips a line's bought flag, owner-only. Bought lines
// stay editable here; locking their quantity and price inputs is a
// presentation concern.
func (s *ListService) ToggleBought(ctx context.Context, lineID int64, actorID string) (*models.LineItem, error) {
	if _, err := s.ownedLine(ctx, lineID, actorID); err != nil {
		return nil, err
	}
	return s.lineItems.ToggleBought(ctx, lineID)
}

// UpdateLineItem applies the full-edit form to a line, owner-only
func (s *ListService) UpdateLineItem(ctx context.Context, lineID int64, req *models.UpdateLineItemRequest, actorID string) (*models.LineItem, error) {
	req.ItemName = strings.TrimSpace(req.ItemName)
	if req.ItemName == "" {
		return nil, fmt.Errorf("item name cannot be empty: %w", models.ErrInvalidArgument)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", models.ErrInvalidArgument)
	}
	if req.SRP != nil && *req.SRP < 0 {
		return nil, fmt.Errorf("srp must not be negative: %w", models.ErrInvalidArgument)
	}
	if req.ActualPrice != nil && *req.ActualPrice < 0 {
		return nil, fmt.Errorf("actual price must not be negative: %w", models.ErrInvalidArgument)
	}

	if _, err := s.ownedLine(ctx, lineID, actorID); err != nil {
		return nil, err
	}
	return s.lineItems.Update(ctx, lineID, req)
}

// RemoveLineItem hard-deletes a line, owner-only
func (s *ListService) RemoveLineItem(ctx context.Context, lineID int64, actorID string) error {
	if _, err := s.ownedLine(ctx, lineID, actorID); err != nil {
		return err
	}
	return s.lineItems.Delete(ctx, lineID)
}
