package service

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/GeraldTgit/magingwais/models"
)

// ImageSearchService looks up product photos through the Google
// Custom Search API.
type ImageSearchService struct {
	search *customsearch.Service
	cseID  string
}

// NewImageSearchService creates a new ImageSearchService using the
// given API key and Custom Search Engine id.
func NewImageSearchService(ctx context.Context, apiKey, cseID string) (*ImageSearchService, error) {
	search, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create custom search service: %w", err)
	}

	return &ImageSearchService{
		search: search,
		cseID:  cseID,
	}, nil
}

// Ensure ImageSearchService implements ImageSearchServiceInterface
var _ ImageSearchServiceInterface = (*ImageSearchService)(nil)

// SearchProductImage returns the link of the first image hit for
// "<query> product", or "" when the search came back empty.
func (s *ImageSearchService) SearchProductImage(ctx context.Context, query string) (string, error) {
	log.Printf("🔍 SearchProductImage: query=%q", query)

	resp, err := s.search.Cse.List().
		Context(ctx).
		Cx(s.cseID).
		Q(query + " product").
		SearchType("image").
		Num(1).
		Safe("active").
		ImgSize("large").
		ImgType("photo").
		Do()
	if err != nil {
		log.Printf("❌ SearchProductImage: Search failed: %v", err)
		return "", fmt.Errorf("image search failed: %w: %v", models.ErrStoreUnavailable, err)
	}

	if len(resp.Items) == 0 {
		log.Printf("⚠️ SearchProductImage: No results for %q", query)
		return "", nil
	}

	log.Printf("✅ SearchProductImage: Found %s", resp.Items[0].Link)
	return resp.Items[0].Link, nil
}
