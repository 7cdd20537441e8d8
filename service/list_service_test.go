package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/GeraldTgit/magingwais/models"
)

// fakeStore is a shared in-memory backing store for the fake
// repositories. It mirrors the store-level semantics the services rely
// on: the unique (list_id, item_id) merge, cascading line deletes and
// the duplicate copy rules.
type fakeStore struct {
	lists  map[int64]*models.ShoppingList
	lines  map[int64]*models.LineItem
	items  map[int64]*models.CatalogItem
	users  map[string]*models.User
	lastID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		lists: make(map[int64]*models.ShoppingList),
		lines: make(map[int64]*models.LineItem),
		items: make(map[int64]*models.CatalogItem),
		users: make(map[string]*models.User),
	}
}

func (f *fakeStore) nextID() int64 {
	f.lastID++
	return f.lastID
}

type fakeListRepo struct{ store *fakeStore }

func (r *fakeListRepo) Create(ctx context.Context, name string, ownerID string, isPublic bool, budget *float64) (*models.ShoppingList, error) {
	list := &models.ShoppingList{
		ID:        r.store.nextID(),
		Name:      name,
		UserID:    ownerID,
		IsPublic:  isPublic,
		Budget:    budget,
		CreatedAt: time.Now(),
	}
	r.store.lists[list.ID] = list
	cp := *list
	return &cp, nil
}

func (r *fakeListRepo) GetByID(ctx context.Context, id int64) (*models.ShoppingList, error) {
	list, ok := r.store.lists[id]
	if !ok {
		return nil, fmt.Errorf("list %d: %w", id, models.ErrNotFound)
	}
	cp := *list
	return &cp, nil
}

func (r *fakeListRepo) GetSummaries(ctx context.Context, filter models.ListFilter, actorID string) ([]models.ShoppingListSummary, error) {
	var out []models.ShoppingListSummary
	for _, list := range r.store.lists {
		if filter.ViewPublic && !list.IsPublic {
			continue
		}
		if !filter.ViewPublic && list.UserID != actorID {
			continue
		}
		out = append(out, models.ShoppingListSummary{ShoppingList: *list})
	}
	return out, nil
}

func (r *fakeListRepo) Update(ctx context.Context, id int64, name *string, isPublic *bool) (*models.ShoppingList, error) {
	list, ok := r.store.lists[id]
	if !ok {
		return nil, fmt.Errorf("list %d: %w", id, models.ErrNotFound)
	}
	if name != nil {
		list.Name = *name
	}
	if isPublic != nil {
		list.IsPublic = *isPublic
	}
	cp := *list
	return &cp, nil
}

func (r *fakeListRepo) SetBudget(ctx context.Context, id int64, budget *float64) (*models.ShoppingList, error) {
	list, ok := r.store.lists[id]
	if !ok {
		return nil, fmt.Errorf("list %d: %w", id, models.ErrNotFound)
	}
	list.Budget = budget
	cp := *list
	return &cp, nil
}

func (r *fakeListRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.store.lists[id]; !ok {
		return fmt.Errorf("list %d: %w", id, models.ErrNotFound)
	}
	delete(r.store.lists, id)
	for lineID, line := range r.store.lines {
		if line.ListID == id {
			delete(r.store.lines, lineID)
		}
	}
	return nil
}

func (r *fakeListRepo) Duplicate(ctx context.Context, sourceID int64, newOwnerID string) (*models.ShoppingList, error) {
	source, ok := r.store.lists[sourceID]
	if !ok {
		return nil, fmt.Errorf("list %d: %w", sourceID, models.ErrNotFound)
	}
	copyList := &models.ShoppingList{
		ID:        r.store.nextID(),
		Name:      source.Name + " (Copy)",
		UserID:    newOwnerID,
		IsPublic:  false,
		Budget:    source.Budget,
		CreatedAt: time.Now(),
	}
	r.store.lists[copyList.ID] = copyList
	for _, line := range r.store.lines {
		if line.ListID != sourceID {
			continue
		}
		cp := *line
		cp.ID = r.store.nextID()
		cp.ListID = copyList.ID
		cp.IsBought = false
		r.store.lines[cp.ID] = &cp
	}
	out := *copyList
	return &out, nil
}

type fakeLineRepo struct{ store *fakeStore }

func (r *fakeLineRepo) ListByListID(ctx context.Context, listID int64) ([]models.LineItem, error) {
	var out []models.LineItem
	for _, line := range r.store.lines {
		if line.ListID == listID {
			out = append(out, *line)
		}
	}
	return out, nil
}

func (r *fakeLineRepo) GetByID(ctx context.Context, id int64) (*models.LineItem, error) {
	line, ok := r.store.lines[id]
	if !ok {
		return nil, fmt.Errorf("list item %d: %w", id, models.ErrNotFound)
	}
	cp := *line
	return &cp, nil
}

func (r *fakeLineRepo) UpsertFromCatalog(ctx context.Context, listID int64, item *models.CatalogItem) (*models.LineItem, bool, error) {
	for _, line := range r.store.lines {
		if line.ListID == listID && line.ItemID != nil && *line.ItemID == item.ID {
			line.Quantity++
			cp := *line
			return &cp, true, nil
		}
	}
	brand := item.Brand
	if brand == "" {
		brand = "N/A"
	}
	itemID := item.ID
	line := &models.LineItem{
		ID:            r.store.nextID(),
		ListID:        listID,
		ItemID:        &itemID,
		ItemName:      item.Name,
		Brand:         brand,
		Description:   item.Description,
		Specification: item.Specification,
		Quantity:      1,
		SRP:           item.SRP,
		CreatedAt:     time.Now(),
	}
	r.store.lines[line.ID] = line
	cp := *line
	return &cp, false, nil
}

func (r *fakeLineRepo) SetQuantity(ctx context.Context, id int64, quantity int) (*models.LineItem, error) {
	line, ok := r.store.lines[id]
	if !ok {
		return nil, fmt.Errorf("list item %d: %w", id, models.ErrNotFound)
	}
	line.Quantity = quantity
	cp := *line
	return &cp, nil
}

func (r *fakeLineRepo) SetActualPrice(ctx context.Context, id int64, price *float64) (*models.LineItem, error) {
	line, ok := r.store.lines[id]
	if !ok {
		return nil, fmt.Errorf("list item %d: %w", id, models.ErrNotFound)
	}
	line.ActualPrice = price
	cp := *line
	return &cp, nil
}

func (r *fakeLineRepo) ToggleBought(ctx context.Context, id int64) (*models.LineItem, error) {
	line, ok := r.store.lines[id]
	if !ok {
		return nil, fmt.Errorf("list item %d: %w", id, models.ErrNotFound)
	}
	line.IsBought = !line.IsBought
	cp := *line
	return &cp, nil
}

func (r *fakeLineRepo) Update(ctx context.Context, id int64, req *models.UpdateLineItemRequest) (*models.LineItem, error) {
	line, ok := r.store.lines[id]
	if !ok {
		return nil, fmt.Errorf("list item %d: %w", id, models.ErrNotFound)
	}
	line.ItemName = req.ItemName
	line.Brand = req.Brand
	line.Description = req.Description
	line.Specification = req.Specification
	line.Quantity = req.Quantity
	line.SRP = req.SRP
	line.ActualPrice = req.ActualPrice
	cp := *line
	return &cp, nil
}

func (r *fakeLineRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.store.lines[id]; !ok {
		return fmt.Errorf("list item %d: %w", id, models.ErrNotFound)
	}
	delete(r.store.lines, id)
	return nil
}

type fakeCatalogRepo struct{ store *fakeStore }

func (r *fakeCatalogRepo) GetByID(ctx context.Context, id int64) (*models.CatalogItem, error) {
	item, ok := r.store.items[id]
	if !ok {
		return nil, fmt.Errorf("item %d: %w", id, models.ErrNotFound)
	}
	cp := *item
	return &cp, nil
}

func (r *fakeCatalogRepo) Filter(ctx context.Context, filter models.CatalogFilter, actorID string) ([]models.CatalogItem, error) {
	var out []models.CatalogItem
	for _, item := range r.store.items {
		if filter.ViewPublic && !item.IsPublic {
			continue
		}
		if !filter.ViewPublic && item.AddedBy != actorID {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeCatalogRepo) Create(ctx context.Context, req *models.CreateCatalogItemRequest, actorID string) (*models.CatalogItem, error) {
	item := &models.CatalogItem{
		ID:            r.store.nextID(),
		Name:          req.Name,
		Brand:         req.Brand,
		Description:   req.Description,
		Specification: req.Specification,
		SRP:           req.SRP,
		IsPublic:      req.IsPublic,
		AddedBy:       actorID,
	}
	r.store.items[item.ID] = item
	cp := *item
	return &cp, nil
}

func (r *fakeCatalogRepo) SetImageURL(ctx context.Context, id int64, imageURL string) error {
	item, ok := r.store.items[id]
	if !ok {
		return fmt.Errorf("item %d: %w", id, models.ErrNotFound)
	}
	item.ImageURL = imageURL
	return nil
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	existing, ok := r.store.users[user.GoogleID]
	if ok {
		nickname := existing.Nickname
		*existing = *user
		existing.Nickname = nickname
	} else {
		cp := *user
		r.store.users[user.GoogleID] = &cp
		existing = &cp
	}
	out := *existing
	return &out, nil
}

func (r *fakeUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	user, ok := r.store.users[googleID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", googleID, models.ErrNotFound)
	}
	cp := *user
	return &cp, nil
}

func newTestListService() (*ListService, *fakeStore) {
	store := newFakeStore()
	svc := NewListService(
		&fakeListRepo{store: store},
		&fakeLineRepo{store: store},
		&fakeCatalogRepo{store: store},
		&fakeUserRepo{store: store},
	)
	return svc, store
}

func floatPtr(v float64) *float64 { return &v }

func seedItem(store *fakeStore, name string, srp *float64, isPublic bool, addedBy string) *models.CatalogItem {
	item := &models.CatalogItem{
		ID:       store.nextID(),
		Name:     name,
		SRP:      srp,
		IsPublic: isPublic,
		AddedBy:  addedBy,
	}
	store.items[item.ID] = item
	return item
}

func seedList(store *fakeStore, name, ownerID string, isPublic bool, budget *float64) *models.ShoppingList {
	list := &models.ShoppingList{
		ID:       store.nextID(),
		Name:     name,
		UserID:   ownerID,
		IsPublic: isPublic,
		Budget:   budget,
	}
	store.lists[list.ID] = list
	return list
}

func TestAddItemToListMerges(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestListService()

	list := seedList(store, "Groceries", "alice", false, nil)
	item := seedItem(store, "Rice 5kg", floatPtr(250), true, "alice")

	t.Run("First Add Creates", func(t *testing.T) {
		res, err := svc.AddItemToList(ctx, list.ID, item.ID, "alice")
		if err != nil {
			t.Fatalf("AddItemToList failed: %v", err)
		}
		if res.Merged {
			t.Error("Expected first add to create a fresh line, got merged")
		}
		if res.Line.Quantity != 1 {
			t.Errorf("Expected quantity 1, got %d", res.Line.Quantity)
		}
		if res.Line.ItemName != "Rice 5kg" {
			t.Errorf("Expected snapshot name 'Rice 5kg', got '%s'", res.Line.ItemName)
		}
		if res.Line.SRP == nil || *res.Line.SRP != 250 {
			t.Errorf("Expected snapshot srp 250, got %v", res.Line.SRP)
		}
	})

	t.Run("Repeated Adds Increment", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			res, err := svc.AddItemToList(ctx, list.ID, item.ID, "alice")
			if err != nil {
				t.Fatalf("AddItemToList failed: %v", err)
			}
			if !res.Merged {
				t.Error("Expected repeated add to merge into the existing line")
			}
		}

		lines, err := svc.lineItems.ListByListID(ctx, list.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(lines) != 1 {
			t.Fatalf("Expected a single line after 3 adds, got %d", len(lines))
		}
		if lines[0].Quantity != 3 {
			t.Errorf("Expected quantity 3 after 3 adds, got %d", lines[0].Quantity)
		}
	})

	t.Run("Snapshot Survives Catalog Edit", func(t *testing.T) {
		store.items[item.ID].Name = "Rice 5kg PREMIUM"
		store.items[item.ID].SRP = floatPtr(999)

		lines, _ := svc.lineItems.ListByListID(ctx, list.ID)
		if lines[0].ItemName != "Rice 5kg" {
			t.Errorf("Expected line to keep snapshot name, got '%s'", lines[0].ItemName)
		}
		if *lines[0].SRP != 250 {
			t.Errorf("Expected line to keep snapshot srp 250, got %v", *lines[0].SRP)
		}
	})
}

func TestAddItemVisibility(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestListService()

	list := seedList(store, "Groceries", "alice", false, nil)
	private := seedItem(store, "Secret Sauce", nil, false, "bob")

	_, err := svc.AddItemToList(ctx, list.ID, private.ID, "alice")
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for another user's private item, got %v", err)
	}

	t.Run("Own Private Item Allowed", func(t *testing.T) {
		own := seedItem(store, "My Sauce", nil, false, "alice")
		if _, err := svc.AddItemToList(ctx, list.ID, own.ID, "alice"); err != nil {
			t.Errorf("Expected own private item to be addable, got %v", err)
		}
	})

	t.Run("Unknown Item", func(t *testing.T) {
		_, err := svc.AddItemToList(ctx, list.ID, 9999, "alice")
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestOwnershipGates(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestListService()

	list := seedList(store, "Groceries", "alice", true, nil)
	item := seedItem(store, "Rice", floatPtr(100), true, "alice")
	res, err := svc.AddItemToList(ctx, list.ID, item.ID, "alice")
	if err != nil {
		t.Fatal(err)
	}
	lineID := res.Line.ID

	checks := []struct {
		name string
		call func() error
	}{
		{"AddItemToList", func() error {
			_, err := svc.AddItemToList(ctx, list.ID, item.ID, "bob")
			return err
		}},
		{"UpdateList", func() error {
			name := "Stolen"
			_, err := svc.UpdateList(ctx, list.ID, &models.UpdateListRequest{Name: &name}, "bob")
			return err
		}},
		{"SetBudget", func() error {
			_, err := svc.SetBudget(ctx, list.ID, floatPtr(500), "bob")
			return err
		}},
		{"DeleteList", func() error {
			return svc.DeleteList(ctx, list.ID, "bob")
		}},
		{"SetQuantity", func() error {
			_, err := svc.SetQuantity(ctx, lineID, 5, "bob")
			return err
		}},
		{"SetActualPrice", func() error {
			_, err := svc.SetActualPrice(ctx, lineID, floatPtr(90), "bob")
			return err
		}},
		{"ToggleBought", func() error {
			_, err := svc.ToggleBought(ctx, lineID, "bob")
			return err
		}},
		{"RemoveLineItem", func() error {
			return svc.RemoveLineItem(ctx, lineID, "bob")
		}},
	}

	for _, check := range checks {
		t.Run(check.name, func(t *testing.T) {
			if err := check.call(); !errors.Is(err, models.ErrForbidden) {
				t.Errorf("Expected ErrForbidden for non-owner, got %v", err)
			}
		})
	}

	// Public visibility grants reads, never writes
	if _, err := svc.GetList(ctx, list.ID, "bob"); err != nil {
		t.Errorf("Expected public list to be readable by non-owner, got %v", err)
	}
}

func TestSetQuantityValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestListService()

	list := seedList(store, "Groceries", "alice", false, nil)
	item := seedItem(store, "Rice", nil, true, "alice")
	res, _ := svc.AddItemToList(ctx, list.ID, item.ID, "alice")

	for _, qty := range []int{0, -3} {
		if _, err := svc.SetQuantity(ctx, res.Line.ID, qty, "alice"); !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument for quantity %d, got %v", qty, err)
		}
	}

	line, err := svc.SetQuantity(ctx, res.Line.ID, 7, "alice")
	if err != nil {
		t.Fatalf("SetQuantity failed: %v", err)
	}
	if line.Quantity != 7 {
		t.Errorf("Expected quantity 7, got %d", line.Quantity)
	}
}

func TestSetActualPriceRevert(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestListService()

	list := seedList(store, "Groceries", "alice", false, nil)
	item := seedItem(store, "Rice", floatPtr(250), true, "alice")
	res, _ := svc.AddItemToList(ctx, list.ID, item.ID, "alice")

	if _, err := svc.SetActualPrice(ctx, res.Line.ID, floatPtr(-1), "alice"); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative price, got %v", err)
	}

	line, err := svc.SetActualPrice(ctx, res.Line.ID, floatPtr(230), "alice")
	if err != nil {
		t.Fatal(err)
	}
	if line.ActualPrice == nil || *line.ActualPrice != 230 {
		t.Errorf("Expected actual price 230, got %v", line.ActualPrice)
	}

	detail, err := svc.GetList(ctx, list.ID, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if detail.Total != 230 {
		t.Errorf("Expected total 230 with actual price set, got %v", detail.Total)
	}

	// Clearing the actual price reverts the line to its srp
	line, err = svc.SetActualPrice(ctx, res.Line.ID, nil, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if line.ActualPrice != nil {
		t.Errorf("Expected actual price cleared, got %v", *line.ActualPrice)
	}

	detail, err = svc.GetList(ctx, list.ID, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if detail.Total != 250 {
		t.Errorf("Expected total to revert to srp 250, got %v", detail.Total)
	}
}

func TestGetListAggregates(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestListService()

	store.users["alice"] = &models.User{GoogleID: "alice", Name: "Alice", Nickname: "Ali"}
	list := seedList(store, "Groceries", "alice", false, floatPtr(100))

	rice := seedItem(store, "Rice", floatPtr(50), true, "alice")
	eggs := seedItem(store, "Eggs", floatPtr(10), true, "alice")

	svc.AddItemToList(ctx, list.ID, rice.ID, "alice")
	res, _ := svc.AddItemToList(ctx, list.ID, eggs.ID, "alice")
	svc.SetQuantity(ctx, res.Line.ID, 8, "alice")

	detail, err := svc.GetList(ctx, list.ID, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if detail.Total != 130 {
		t.Errorf("Expected total 130, got %v", detail.Total)
	}
	if detail.Change != -30 {
		t.Errorf("Expected change -30, got %v", detail.Change)
	}
	if detail.CreatorNickname != "Ali" {
		t.Errorf("Expected creator nickname 'Ali', got '%s'", detail.CreatorNickname)
	}

	t.Run("Private List Hidden", func(t *testing.T) {
		if _, err := svc.GetList(ctx, list.ID, "bob"); !errors.Is(err, models.ErrForbidden) {
			t.Errorf("Expected ErrForbidden for private list, got %v", err)
		}
	})
}

func TestDuplicateList(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestListService()

	source := seedList(store, "Weekly", "alice", true, floatPtr(500))
	item := seedItem(store, "Rice", floatPtr(50), true, "alice")
	res, _ := svc.AddItemToList(ctx, source.ID, item.ID, "alice")
	svc.SetQuantity(ctx, res.Line.ID, 3, "alice")
	svc.ToggleBought(ctx, res.Line.ID, "alice")

	copyList, err := svc.DuplicateList(ctx, source.ID, "bob")
	if err != nil {
		t.Fatalf("DuplicateList failed: %v", err)
	}
	if copyList.Name != "Weekly (Copy)" {
		t.Errorf("Expected name 'Weekly (Copy)', got '%s'", copyList.Name)
	}
	if copyList.IsPublic {
		t.Error("Expected copy to start private")
	}
	if copyList.UserID != "bob" {
		t.Errorf("Expected copy owned by bob, got '%s'", copyList.UserID)
	}
	if copyList.Budget == nil || *copyList.Budget != 500 {
		t.Errorf("Expected budget 500 carried over, got %v", copyList.Budget)
	}

	copied, err := svc.GetList(ctx, copyList.ID, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if len(copied.Items) != 1 {
		t.Fatalf("Expected 1 copied line, got %d", len(copied.Items))
	}
	if copied.Items[0].Quantity != 3 {
		t.Errorf("Expected copied quantity 3, got %d", copied.Items[0].Quantity)
	}
	if copied.Items[0].IsBought {
		t.Error("Expected bought flags reset on the copy")
	}

	t.Run("Copies Are Independent", func(t *testing.T) {
		svc.SetQuantity(ctx, res.Line.ID, 10, "alice")

		copied, err := svc.GetList(ctx, copyList.ID, "bob")
		if err != nil {
			t.Fatal(err)
		}
		if copied.Items[0].Quantity != 3 {
			t.Errorf("Expected copy unaffected by source edit, got quantity %d", copied.Items[0].Quantity)
		}
	})

	t.Run("Private Source Forbidden", func(t *testing.T) {
		private := seedList(store, "Secret", "alice", false, nil)
		if _, err := svc.DuplicateList(ctx, private.ID, "bob"); !errors.Is(err, models.ErrForbidden) {
			t.Errorf("Expected ErrForbidden duplicating a private list, got %v", err)
		}
	})
}

func TestCreateListValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestListService()

	t.Run("Empty Name", func(t *testing.T) {
		_, err := svc.CreateList(ctx, &models.CreateListRequest{Name: "   "}, "alice")
		if !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument for blank name, got %v", err)
		}
	})

	t.Run("Negative Budget", func(t *testing.T) {
		_, err := svc.CreateList(ctx, &models.CreateListRequest{Name: "Groceries", Budget: floatPtr(-5)}, "alice")
		if !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument for negative budget, got %v", err)
		}
	})

	t.Run("Trims Name", func(t *testing.T) {
		list, err := svc.CreateList(ctx, &models.CreateListRequest{Name: "  Groceries  "}, "alice")
		if err != nil {
			t.Fatal(err)
		}
		if list.Name != "Groceries" {
			t.Errorf("Expected trimmed name 'Groceries', got '%s'", list.Name)
		}
	})
}

func TestUpdateLineItemValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestListService()

	list := seedList(store, "Groceries", "alice", false, nil)
	item := seedItem(store, "Rice", floatPtr(50), true, "alice")
	res, _ := svc.AddItemToList(ctx, list.ID, item.ID, "alice")

	bad := []*models.UpdateLineItemRequest{
		{ItemName: "  ", Quantity: 1},
		{ItemName: "Rice", Quantity: 0},
		{ItemName: "Rice", Quantity: 1, SRP: floatPtr(-1)},
		{ItemName: "Rice", Quantity: 1, ActualPrice: floatPtr(-1)},
	}
	for i, req := range bad {
		if _, err := svc.UpdateLineItem(ctx, res.Line.ID, req, "alice"); !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Case %d: expected ErrInvalidArgument, got %v", i, err)
		}
	}

	line, err := svc.UpdateLineItem(ctx, res.Line.ID, &models.UpdateLineItemRequest{
		ItemName:    "Brown Rice",
		Brand:       "FarmCo",
		Quantity:    2,
		SRP:         floatPtr(60),
		ActualPrice: floatPtr(55),
	}, "alice")
	if err != nil {
		t.Fatalf("UpdateLineItem failed: %v", err)
	}
	if line.ItemName != "Brown Rice" || line.Quantity != 2 {
		t.Errorf("Expected full edit applied, got %+v", line)
	}
	if line.ActualPrice == nil || *line.ActualPrice != 55 {
		t.Errorf("Expected actual price 55, got %v", line.ActualPrice)
	}
}
