package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/GeraldTgit/magingwais/models"
	"github.com/GeraldTgit/magingwais/service"
)

// ListController handles HTTP requests for shopping lists and their
// line items
type ListController struct {
	auth   service.AuthServiceInterface
	lists  service.ListServiceInterface
	export service.ExportServiceInterface
}

// NewListController creates a new ListController
func NewListController(auth service.AuthServiceInterface, lists service.ListServiceInterface, export service.ExportServiceInterface) *ListController {
	return &ListController{
		auth:   auth,
		lists:  lists,
		export: export,
	}
}

// BrowseLists handles GET /api/lists?public=&q=
func (c *ListController) BrowseLists(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	filter := models.ListFilter{
		ViewPublic: r.URL.Query().Get("public") == "true",
		Name:       r.URL.Query().Get("q"),
	}

	summaries, err := c.lists.BrowseLists(r.Context(), filter, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if summaries == nil {
		summaries = []models.ShoppingListSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// CreateList handles POST /api/lists
func (c *ListController) CreateList(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateList: Received %s request to %s", r.Method, r.URL.Path)

	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	var req models.CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	list, err := c.lists.CreateList(r.Context(), &req, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// GetList handles GET /api/lists/{id}
func (c *ListController) GetList(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	listID, err := pathID(r.URL.Path, "/api/lists/")
	if err != nil {
		http.Error(w, "Invalid list id", http.StatusBadRequest)
		return
	}

	detail, err := c.lists.GetList(r.Context(), listID, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if detail.Items == nil {
		detail.Items = []models.LineItem{}
	}
	writeJSON(w, http.StatusOK, detail)
}

// UpdateList handles PUT /api/lists/{id}
func (c *ListController) UpdateList(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	listID, err := pathID(r.URL.Path, "/api/lists/")
	if err != nil {
		http.Error(w, "Invalid list id", http.StatusBadRequest)
		return
	}

	var req models.UpdateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	list, err := c.lists.UpdateList(r.Context(), listID, &req, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// SetBudget handles PUT /api/lists/{id}/budget
func (c *ListController) SetBudget(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	listID, err := pathID(r.URL.Path, "/api/lists/")
	if err != nil {
		http.Error(w, "Invalid list id", http.StatusBadRequest)
		return
	}

	var req models.SetBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	list, err := c.lists.SetBudget(r.Context(), listID, req.Budget, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DeleteList handles DELETE /api/lists/{id}
func (c *ListController) DeleteList(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteList: Received %s request to %s", r.Method, r.URL.Path)

	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	listID, err := pathID(r.URL.Path, "/api/lists/")
	if err != nil {
		http.Error(w, "Invalid list id", http.StatusBadRequest)
		return
	}

	if err := c.lists.DeleteList(r.Context(), listID, actorID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DuplicateList handles POST /api/lists/{id}/duplicate
func (c *ListController) DuplicateList(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DuplicateList: Received %s request to %s", r.Method, r.URL.Path)

	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	sourceID, err := pathID(r.URL.Path, "/api/lists/")
	if err != nil {
		http.Error(w, "Invalid list id", http.StatusBadRequest)
		return
	}

	copyList, err := c.lists.DuplicateList(r.Context(), sourceID, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, copyList)
}

// AddItem handles POST /api/lists/{id}/items
// Merges a catalog item into the list: +1 on an existing line or a new
// quantity-1 line. Adding an already-listed item is not an error.
func (c *ListController) AddItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddItem: Received %s request to %s", r.Method, r.URL.Path)

	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	listID, err := pathID(r.URL.Path, "/api/lists/")
	if err != nil {
		http.Error(w, "Invalid list id", http.StatusBadRequest)
		return
	}

	var req models.AddItemToListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.ItemID <= 0 {
		http.Error(w, "item_id must be greater than 0", http.StatusBadRequest)
		return
	}

	response, err := c.lists.AddItemToList(r.Context(), listID, req.ItemID, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// ExportList handles GET /api/lists/{id}/export
func (c *ListController) ExportList(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ExportList: Received %s request to %s", r.Method, r.URL.Path)

	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	listID, err := pathID(r.URL.Path, "/api/lists/")
	if err != nil {
		http.Error(w, "Invalid list id", http.StatusBadRequest)
		return
	}

	pdf, err := c.export.ExportListPDF(r.Context(), listID, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=shopping-list-%d.pdf", listID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// SetQuantity handles PUT /api/list-items/{id}/quantity
func (c *ListController) SetQuantity(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	lineID, err := pathID(r.URL.Path, "/api/list-items/")
	if err != nil {
		http.Error(w, "Invalid line item id", http.StatusBadRequest)
		return
	}

	var req models.SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	line, err := c.lists.SetQuantity(r.Context(), lineID, req.Quantity, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

// SetActualPrice handles PUT /api/list-items/{id}/price
func (c *ListController) SetActualPrice(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	lineID, err := pathID(r.URL.Path, "/api/list-items/")
	if err != nil {
		http.Error(w, "Invalid line item id", http.StatusBadRequest)
		return
	}

	var req models.SetActualPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	line, err := c.lists.SetActualPrice(r.Context(), lineID, req.ActualPrice, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

// ToggleBought handles PUT /api/list-items/{id}/bought
func (c *ListController) ToggleBought(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	lineID, err := pathID(r.URL.Path, "/api/list-items/")
	if err != nil {
		http.Error(w, "Invalid line item id", http.StatusBadRequest)
		return
	}

	line, err := c.lists.ToggleBought(r.Context(), lineID, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

// UpdateLineItem handles PUT /api/list-items/{id}
func (c *ListController) UpdateLineItem(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	lineID, err := pathID(r.URL.Path, "/api/list-items/")
	if err != nil {
		http.Error(w, "Invalid line item id", http.StatusBadRequest)
		return
	}

	var req models.UpdateLineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	line, err := c.lists.UpdateLineItem(r.Context(), lineID, &req, actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

// RemoveLineItem handles DELETE /api/list-items/{id}
func (c *ListController) RemoveLineItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RemoveLineItem: Received %s request to %s", r.Method, r.URL.Path)

	actorID, ok := actorFromRequest(c.auth, w, r)
	if !ok {
		return
	}

	lineID, err := pathID(r.URL.Path, "/api/list-items/")
	if err != nil {
		http.Error(w, "Invalid line item id", http.StatusBadRequest)
		return
	}

	if err := c.lists.RemoveLineItem(r.Context(), lineID, actorID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
