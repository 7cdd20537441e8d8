package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/GeraldTgit/magingwais/models"
	"github.com/GeraldTgit/magingwais/service"
)

// ItemController handles HTTP requests for catalog items
type ItemController struct {
	auth    service.AuthServiceInterface
	catalog service.CatalogServiceInterface
}

// NewItemController creates a new ItemController
func NewItemController(auth service.AuthServiceInterface, catalog service.CatalogServiceInterface) *ItemController {
	return &ItemController{
		auth:    auth,
		catalog: catalog,
	}
}

// BrowseItems handles GET /api/items?public=&name=&brand=&description=&sort=
func (c *ItemController) BrowseItems(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := models.CatalogFilter{
		ViewPublic:  q.Get("public") == "true",
		Name:        q.Get("name"),
		Brand:       q.Get("brand"),
		Description: q.Get("description"),
		Sort:        q.Get("sort"),
	}

	items, err := c.catalog.BrowseItems(r.Context(), filter, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.CatalogItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateItem handles POST /api/items
func (c *ItemController) CreateItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateItem: Received %s request to %s", r.Method, r.URL.Path)

	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	var req models.CreateCatalogItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	item, err := c.catalog.CreateItem(r.Context(), &req, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// GetItem handles GET /api/items/{id}
func (c *ItemController) GetItem(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	itemID, err := pathID(r.URL.Path, "/api/items/")
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	item, err := c.catalog.GetItem(r.Context(), itemID, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// LookupImage handles POST /api/items/{id}/image
// Looks up and stores a product image for the item
func (c *ItemController) LookupImage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 LookupImage: Received %s request to %s", r.Method, r.URL.Path)

	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	itemID, err := pathID(r.URL.Path, "/api/items/")
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	imageURL, err := c.catalog.EnsureImage(r.Context(), itemID, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}

// GetImage handles GET /api/items/{id}/image?size=thumb|medium
// Serves the optimized JPEG for the item's product image
func (c *ItemController) GetImage(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	itemID, err := pathID(r.URL.Path, "/api/items/")
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	item, err := c.catalog.GetItem(r.Context(), itemID, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if item.ImageURL == "" {
		http.Error(w, "Item has no image", http.StatusNotFound)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}

	data, err := service.FetchOptimizedItemImage(r.Context(), itemID, item.ImageURL, size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
