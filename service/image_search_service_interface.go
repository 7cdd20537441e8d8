package service

import (
	"context"
	"fmt"

	"github.com/GeraldTgit/magingwais/models"
)

// ImageSearchServiceInterface defines the contract for product image lookup
type ImageSearchServiceInterface interface {
	SearchProductImage(ctx context.Context, query string) (string, error)
}

// DisabledImageSearch stands in when no search API credentials are
// configured.
type DisabledImageSearch struct{}

func (DisabledImageSearch) SearchProductImage(ctx context.Context, query string) (string, error) {
	return "", fmt.Errorf("image search is not configured: %w", models.ErrStoreUnavailable)
}
