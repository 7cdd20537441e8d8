package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/GeraldTgit/magingwais/db"
	"github.com/GeraldTgit/magingwais/models"
)

// LineItemRepository handles database operations for list items
type LineItemRepository struct{}

// NewLineItemRepository creates a new LineItemRepository
func NewLineItemRepository() *LineItemRepository {
	return &LineItemRepository{}
}

// Ensure LineItemRepository implements LineItemRepositoryInterface
var _ LineItemRepositoryInterface = (*LineItemRepository)(nil)

const lineItemColumns = `id, list_id, item_id, item_name, brand, description, specification,
       quantity, srp, actual_price, isbought, created_at`

func scanLineItem(row interface{ Scan(...any) error }) (*models.LineItem, error) {
	var line models.LineItem
	var itemID sql.NullInt64
	var brand, description, specification sql.NullString
	var srp, actualPrice sql.NullFloat64

	err := row.Scan(&line.ID, &line.ListID, &itemID, &line.ItemName,
		&brand, &description, &specification,
		&line.Quantity, &srp, &actualPrice, &line.IsBought, &line.CreatedAt)
	if err != nil {
		return nil, err
	}

	if itemID.Valid {
		line.ItemID = &itemID.Int64
	}
	line.Brand = brand.String
	line.Description = description.String
	line.Specification = specification.String
	if srp.Valid {
		line.SRP = &srp.Float64
	}
	if actualPrice.Valid {
		line.ActualPrice = &actualPrice.Float64
	}
	return &line, nil
}

// ListByListID retrieves all line items of a list, oldest first
func (r *LineItemRepository) ListByListID(ctx context.Context, listID int64) ([]models.LineItem, error) {
	query := `
		SELECT ` + lineItemColumns + `
		FROM list_items
		WHERE list_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, listID)
	if err != nil {
		log.Printf("❌ ListByListID: Error querying line items: %v", err)
		return nil, storeErr("query line items", err)
	}
	defer rows.Close()

	var lines []models.LineItem
	for rows.Next() {
		line, err := scanLineItem(rows)
		if err != nil {
			log.Printf("❌ ListByListID: Error scanning line item: %v", err)
			continue
		}
		lines = append(lines, *line)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ ListByListID: Error iterating line items: %v", err)
		return nil, storeErr("iterate line items", err)
	}
	return lines, nil
}

// GetByID retrieves a single line item
func (r *LineItemRepository) GetByID(ctx context.Context, id int64) (*models.LineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM list_items WHERE id = $1`

	line, err := scanLineItem(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("line item %d: %w", id, models.ErrNotFound)
		}
		log.Printf("❌ GetByID: Error fetching line item: %v", err)
		return nil, storeErr("fetch line item", err)
	}
	return line, nil
}

// UpsertFromCatalog merges a catalog item into a list as one atomic
// statement: a new line with quantity 1 and a snapshot of the item's
// display fields and SRP, or a +1 increment of the existing line for
// the same item. The UNIQUE (list_id, item_id) constraint makes the
// merge safe against two near-simultaneous adds of the same item.
// Returns the resulting line and whether an existing line was merged.
func (r *LineItemRepository) UpsertFromCatalog(ctx context.Context, listID int64, item *models.CatalogItem) (*models.LineItem, bool, error) {
	log.Printf("📦 UpsertFromCatalog: list_id=%d, item_id=%d (%s)", listID, item.ID, item.Name)

	brand := item.Brand
	if brand == "" {
		brand = "N/A"
	}

	query := `
		INSERT INTO list_items
			(list_id, item_id, item_name, brand, description, specification,
			 quantity, srp, actual_price, isbought)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7, NULL, false)
		ON CONFLICT (list_id, item_id)
		DO UPDATE SET quantity = list_items.quantity + 1
		RETURNING ` + lineItemColumns

	line, err := scanLineItem(db.DB.QueryRowContext(ctx, query,
		listID, item.ID, item.Name, brand, item.Description, item.Specification, item.SRP))
	if err != nil {
		log.Printf("❌ UpsertFromCatalog: Error upserting line item: %v", err)
		return nil, false, storeErr("upsert line item", err)
	}

	// A fresh insert always returns quantity 1; the increment path
	// can only return 2 or more because quantity never drops below 1.
	merged := line.Quantity > 1
	log.Printf("✅ UpsertFromCatalog: line_id=%d, quantity=%d, merged=%v", line.ID, line.Quantity, merged)
	return line, merged, nil
}

// SetQuantity sets the planned quantity of a line item
func (r *LineItemRepository) SetQuantity(ctx context.Context, id int64, quantity int) (*models.LineItem, error) {
	query := `UPDATE list_items SET quantity = $2 WHERE id = $1 RETURNING ` + lineItemColumns

	line, err := scanLineItem(db.DB.QueryRowContext(ctx, query, id, quantity))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("line item %d: %w", id, models.ErrNotFound)
		}
		log.Printf("❌ SetQuantity: Error updating quantity: %v", err)
		return nil, storeErr("set quantity", err)
	}
	return line, nil
}

// SetActualPrice sets (or clears, with nil) the owner-entered price
func (r *LineItemRepository) SetActualPrice(ctx context.Context, id int64, price *float64) (*models.LineItem, error) {
	query := `UPDATE list_items SET actual_price = $2 WHERE id = $1 RETURNING ` + lineItemColumns

	line, err := scanLineItem(db.DB.QueryRowContext(ctx, query, id, price))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("line item %d: %w", id, models.ErrNotFound)
		}
		log.Printf("❌ SetActualPrice: Error updating actual price: %v", err)
		return nil, storeErr("set actual price", err)
	}
	return line, nil
}

// ToggleBought flips the bought flag in a single statement
func (r *LineItemRepository) ToggleBought(ctx context.Context, id int64) (*models.LineItem, error) {
	query := `UPDATE list_items SET isbought = NOT isbought WHERE id = $1 RETURNING ` + lineItemColumns

	line, err := scanLineItem(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("line item %d: %w", id, models.ErrNotFound)
		}
		log.Printf("❌ ToggleBought: Error toggling bought flag: %v", err)
		return nil, storeErr("toggle bought flag", err)
	}
	return line, nil
}

// Update applies the full-edit form: snapshot text fields, prices and
// quantity in one statement
func (r *LineItemRepository) Update(ctx context.Context, id int64, req *models.UpdateLineItemRequest) (*models.LineItem, error) {
	query := `
		UPDATE list_items
		SET item_name = $2, brand = $3, description = $4, specification = $5,
		    quantity = $6, srp = $7, actual_price = $8
		WHERE id = $1
		RETURNING ` + lineItemColumns

	line, err := scanLineItem(db.DB.QueryRowContext(ctx, query, id,
		req.ItemName, req.Brand, req.Description, req.Specification,
		req.Quantity, req.SRP, req.ActualPrice))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("line item %d: %w", id, models.ErrNotFound)
		}
		log.Printf("❌ Update: Error updating line item: %v", err)
		return nil, storeErr("update line item", err)
	}

	log.Printf("✅ Update: Updated line item id=%d", line.ID)
	return line, nil
}

// Delete removes a line item
func (r *LineItemRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM list_items WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deleting line item: %v", err)
		return storeErr("delete line item", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("delete line item", err)
	}
	if affected == 0 {
		return fmt.Errorf("line item %d: %w", id, models.ErrNotFound)
	}

	log.Printf("✅ Delete: Deleted line item id=%d", id)
	return nil
}
