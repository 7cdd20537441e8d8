package models

import "time"

// ShoppingList represents a shopping_lists row. UserID is the immutable
// owner; name, is_public and budget are owner-mutable.
type ShoppingList struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	IsPublic  bool      `json:"is_public"`
	Budget    *float64  `json:"budget"`
	CreatedAt time.Time `json:"created_at"`
}

// ShoppingListSummary is the browse-view shape: the list row plus its
// creator's display name and derived counts/totals.
type ShoppingListSummary struct {
	ShoppingList
	CreatorNickname string  `json:"creator_nickname,omitempty"`
	ItemCount       int     `json:"item_count"`
	Total           float64 `json:"total"`
}

// ShoppingListDetail is the full read-view: list, lines and aggregates.
type ShoppingListDetail struct {
	ShoppingList
	CreatorNickname string     `json:"creator_nickname,omitempty"`
	Items           []LineItem `json:"items"`
	Total           float64    `json:"total"`
	Change          float64    `json:"change"`
}

// CreateListRequest is the request body for POST /api/lists
type CreateListRequest struct {
	Name     string   `json:"name"`
	IsPublic bool     `json:"is_public"`
	Budget   *float64 `json:"budget,omitempty"`
}

// UpdateListRequest carries the owner-editable list fields. Nil means
// "leave unchanged".
type UpdateListRequest struct {
	Name     *string `json:"name,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

// SetBudgetRequest is the request body for PUT /api/lists/{id}/budget.
// The budget is always applied; null clears it.
type SetBudgetRequest struct {
	Budget *float64 `json:"budget"`
}

// ListFilter carries the optional search filters for list queries.
type ListFilter struct {
	ViewPublic bool
	Name       string
}
