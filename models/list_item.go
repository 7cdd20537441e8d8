package models

import "time"

// LineItem represents a list_items row: one catalog item's planned
// quantity and price inside a specific shopping list. The item fields
// are a snapshot captured when the item was added; ItemID is the
// stable match key used by the reconciliation merge.
type LineItem struct {
	ID            int64     `json:"id"`
	ListID        int64     `json:"list_id"`
	ItemID        *int64    `json:"item_id"`
	ItemName      string    `json:"item_name"`
	Brand         string    `json:"brand,omitempty"`
	Description   string    `json:"description,omitempty"`
	Specification string    `json:"specification,omitempty"`
	Quantity      int       `json:"quantity"`
	SRP           *float64  `json:"srp"`
	ActualPrice   *float64  `json:"actual_price"`
	IsBought      bool      `json:"isbought"`
	CreatedAt     time.Time `json:"created_at"`
}

// AddItemToListRequest is the request body for POST /api/lists/{id}/items
type AddItemToListRequest struct {
	ItemID int64 `json:"item_id"`
}

// AddItemToListResponse reports the merge outcome: the resulting line
// and whether it was newly created or an existing line was incremented.
type AddItemToListResponse struct {
	Line   *LineItem `json:"line"`
	Merged bool      `json:"merged"`
}

// SetQuantityRequest is the request body for PUT /api/list-items/{id}/quantity
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetActualPriceRequest is the request body for PUT /api/list-items/{id}/price.
// A null actual_price reverts the line to its catalog reference price.
type SetActualPriceRequest struct {
	ActualPrice *float64 `json:"actual_price"`
}

// UpdateLineItemRequest is the full-edit body for PUT /api/list-items/{id}.
// Every field is applied as sent (the edit form submits all of them).
type UpdateLineItemRequest struct {
	ItemName      string   `json:"item_name"`
	Brand         string   `json:"brand"`
	Description   string   `json:"description"`
	Specification string   `json:"specification"`
	Quantity      int      `json:"quantity"`
	SRP           *float64 `json:"srp"`
	ActualPrice   *float64 `json:"actual_price"`
}
