package models

// CatalogItem represents an item in the shared catalog.
// The reconciliation engine only ever reads these; line items carry a
// denormalized snapshot taken at add-time, so later catalog edits do
// not propagate into existing lists.
type CatalogItem struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand,omitempty"`
	Description   string   `json:"description,omitempty"`
	Specification string   `json:"specification,omitempty"`
	SRP           *float64 `json:"srp"`
	AveragePrice  *float64 `json:"average_price"`
	ImageURL      string   `json:"image_url,omitempty"`
	IsPublic      bool     `json:"is_public"`
	AddedBy       string   `json:"added_by"`
}

// CreateCatalogItemRequest is the request body for POST /api/items
type CreateCatalogItemRequest struct {
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Description   string   `json:"description"`
	Specification string   `json:"specification"`
	SRP           *float64 `json:"srp"`
	IsPublic      bool     `json:"is_public"`
}

// Catalog sort options accepted by GET /api/items
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortSRPLow    = "srp-low"
	SortSRPHigh   = "srp-high"
)

// CatalogFilter carries the optional search filters for catalog queries.
// ViewPublic=false means "my items" (added_by = actor).
type CatalogFilter struct {
	ViewPublic  bool
	Name        string
	Brand       string
	Description string
	Sort        string
}
