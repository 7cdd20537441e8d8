package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/GeraldTgit/magingwais/db"
	"github.com/GeraldTgit/magingwais/models"
)

// ShoppingListRepository handles database operations for shopping lists
type ShoppingListRepository struct{}

// NewShoppingListRepository creates a new ShoppingListRepository
func NewShoppingListRepository() *ShoppingListRepository {
	return &ShoppingListRepository{}
}

// Ensure ShoppingListRepository implements ShoppingListRepositoryInterface
var _ ShoppingListRepositoryInterface = (*ShoppingListRepository)(nil)

func scanList(row interface{ Scan(...any) error }) (*models.ShoppingList, error) {
	var list models.ShoppingList
	var budget sql.NullFloat64
	if err := row.Scan(&list.ID, &list.Name, &list.UserID, &list.IsPublic, &budget, &list.CreatedAt); err != nil {
		return nil, err
	}
	if budget.Valid {
		list.Budget = &budget.Float64
	}
	return &list, nil
}

// Create inserts a new shopping list owned by ownerID
func (r *ShoppingListRepository) Create(ctx context.Context, name string, ownerID string, isPublic bool, budget *float64) (*models.ShoppingList, error) {
	log.Printf("📝 Create: name=%q, owner=%s, is_public=%v", name, ownerID, isPublic)

	query := `
		INSERT INTO shopping_lists (name, user_id, is_public, budget)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, user_id, is_public, budget, created_at
	`

	list, err := scanList(db.DB.QueryRowContext(ctx, query, name, ownerID, isPublic, budget))
	if err != nil {
		log.Printf("❌ Create: Error inserting shopping list: %v", err)
		return nil, storeErr("create shopping list", err)
	}

	log.Printf("✅ Create: Successfully created list id=%d", list.ID)
	return list, nil
}

// GetByID retrieves a shopping list by ID
func (r *ShoppingListRepository) GetByID(ctx context.Context, id int64) (*models.ShoppingList, error) {
	query := `
		SELECT id, name, user_id, is_public, budget, created_at
		FROM shopping_lists
		WHERE id = $1
	`

	list, err := scanList(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shopping list %d: %w", id, models.ErrNotFound)
		}
		log.Printf("❌ GetByID: Error fetching shopping list: %v", err)
		return nil, storeErr("fetch shopping list", err)
	}
	return list, nil
}

// GetSummaries retrieves lists for the browse view: the actor's own
// lists, or all public lists, optionally filtered by name substring.
// Counts and totals are computed in SQL from current line item state.
func (r *ShoppingListRepository) GetSummaries(ctx context.Context, filter models.ListFilter, actorID string) ([]models.ShoppingListSummary, error) {
	log.Printf("🔍 GetSummaries: public=%v, name=%q, actor=%s", filter.ViewPublic, filter.Name, actorID)

	query := `
		SELECT sl.id, sl.name, sl.user_id, sl.is_public, sl.budget, sl.created_at,
		       COALESCE(u.nickname, '') AS creator_nickname,
		       COUNT(li.id) AS item_count,
		       COALESCE(SUM(COALESCE(li.actual_price, li.srp, 0) * li.quantity), 0) AS total
		FROM shopping_lists sl
		LEFT JOIN users u ON u.google_id = sl.user_id
		LEFT JOIN list_items li ON li.list_id = sl.id
	`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.ViewPublic {
		conditions = append(conditions, "sl.is_public = true")
	} else {
		conditions = append(conditions, fmt.Sprintf("sl.user_id = $%d", argIndex))
		args = append(args, actorID)
		argIndex++
	}

	if strings.TrimSpace(filter.Name) != "" {
		conditions = append(conditions, fmt.Sprintf("sl.name ILIKE $%d", argIndex))
		args = append(args, "%"+strings.TrimSpace(filter.Name)+"%")
		argIndex++
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += `
		GROUP BY sl.id, u.nickname
		ORDER BY sl.created_at DESC
	`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ GetSummaries: Error querying lists: %v", err)
		return nil, storeErr("query shopping lists", err)
	}
	defer rows.Close()

	var summaries []models.ShoppingListSummary
	for rows.Next() {
		var s models.ShoppingListSummary
		var budget sql.NullFloat64
		err := rows.Scan(&s.ID, &s.Name, &s.UserID, &s.IsPublic, &budget, &s.CreatedAt,
			&s.CreatorNickname, &s.ItemCount, &s.Total)
		if err != nil {
			log.Printf("❌ GetSummaries: Error scanning list row: %v", err)
			continue
		}
		if budget.Valid {
			s.Budget = &budget.Float64
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ GetSummaries: Error iterating lists: %v", err)
		return nil, storeErr("iterate shopping lists", err)
	}

	log.Printf("✅ GetSummaries: Found %d lists", len(summaries))
	return summaries, nil
}

// Update applies the owner-editable fields that are non-nil
func (r *ShoppingListRepository) Update(ctx context.Context, id int64, name *string, isPublic *bool) (*models.ShoppingList, error) {
	query := `
		UPDATE shopping_lists
		SET name = COALESCE($2, name),
		    is_public = COALESCE($3, is_public)
		WHERE id = $1
		RETURNING id, name, user_id, is_public, budget, created_at
	`

	list, err := scanList(db.DB.QueryRowContext(ctx, query, id, name, isPublic))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shopping list %d: %w", id, models.ErrNotFound)
		}
		log.Printf("❌ Update: Error updating shopping list: %v", err)
		return nil, storeErr("update shopping list", err)
	}

	log.Printf("✅ Update: Updated list id=%d", list.ID)
	return list, nil
}

// SetBudget sets or clears (nil) the list budget
func (r *ShoppingListRepository) SetBudget(ctx context.Context, id int64, budget *float64) (*models.ShoppingList, error) {
	query := `
		UPDATE shopping_lists
		SET budget = $2
		WHERE id = $1
		RETURNING id, name, user_id, is_public, budget, created_at
	`

	list, err := scanList(db.DB.QueryRowContext(ctx, query, id, budget))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shopping list %d: %w", id, models.ErrNotFound)
		}
		log.Printf("❌ SetBudget: Error updating budget: %v", err)
		return nil, storeErr("set list budget", err)
	}
	return list, nil
}

// Delete removes a shopping list. Line items go with it via the
// ON DELETE CASCADE foreign key.
func (r *ShoppingListRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM shopping_lists WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deleting shopping list: %v", err)
		return storeErr("delete shopping list", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("delete shopping list", err)
	}
	if affected == 0 {
		return fmt.Errorf("shopping list %d: %w", id, models.ErrNotFound)
	}

	log.Printf("✅ Delete: Deleted list id=%d", id)
	return nil
}

// Duplicate copies a shopping list and all of its line items for
// newOwnerID inside a single transaction: either the full copy lands
// or nothing does. The copy is private, named "<original> (Copy)",
// and its lines start with isbought reset while actual prices carry
// over. The copy holds no reference back to the source.
func (r *ShoppingListRepository) Duplicate(ctx context.Context, sourceID int64, newOwnerID string) (*models.ShoppingList, error) {
	log.Printf("📦 Duplicate: source=%d, new_owner=%s", sourceID, newOwnerID)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Duplicate: Error starting transaction: %v", err)
		return nil, storeErr("start transaction", err)
	}
	defer tx.Rollback()

	var sourceName string
	var budget sql.NullFloat64
	err = tx.QueryRowContext(ctx, `SELECT name, budget FROM shopping_lists WHERE id = $1`, sourceID).
		Scan(&sourceName, &budget)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shopping list %d: %w", sourceID, models.ErrNotFound)
		}
		log.Printf("❌ Duplicate: Error fetching source list: %v", err)
		return nil, storeErr("fetch source list", err)
	}

	queryInsert := `
		INSERT INTO shopping_lists (name, user_id, is_public, budget)
		VALUES ($1, $2, false, $3)
		RETURNING id, name, user_id, is_public, budget, created_at
	`
	copyList, err := scanList(tx.QueryRowContext(ctx, queryInsert, sourceName+" (Copy)", newOwnerID, budget))
	if err != nil {
		log.Printf("❌ Duplicate: Error inserting copy: %v", err)
		return nil, storeErr("insert list copy", err)
	}

	queryCopyItems := `
		INSERT INTO list_items
			(list_id, item_id, item_name, brand, description, specification,
			 quantity, srp, actual_price, isbought)
		SELECT $1, item_id, item_name, brand, description, specification,
		       quantity, srp, actual_price, false
		FROM list_items
		WHERE list_id = $2
	`
	if _, err := tx.ExecContext(ctx, queryCopyItems, copyList.ID, sourceID); err != nil {
		log.Printf("❌ Duplicate: Error copying line items: %v", err)
		return nil, storeErr("copy line items", err)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Duplicate: Error committing transaction: %v", err)
		return nil, storeErr("commit transaction", err)
	}

	log.Printf("✅ Duplicate: Created copy id=%d of list id=%d", copyList.ID, sourceID)
	return copyList, nil
}
