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

// CatalogItemRepository handles database operations for catalog items
type CatalogItemRepository struct{}

// NewCatalogItemRepository creates a new CatalogItemRepository
func NewCatalogItemRepository() *CatalogItemRepository {
	return &CatalogItemRepository{}
}

// Ensure CatalogItemRepository implements CatalogItemRepositoryInterface
var _ CatalogItemRepositoryInterface = (*CatalogItemRepository)(nil)

const catalogColumns = `id, name, brand, description, specification, srp, average_price, image_url, is_public, added_by`

func scanCatalogItem(row interface{ Scan(...any) error }) (*models.CatalogItem, error) {
	var item models.CatalogItem
	var brand, description, specification, imageURL sql.NullString
	var srp, averagePrice sql.NullFloat64

	err := row.Scan(&item.ID, &item.Name, &brand, &description, &specification,
		&srp, &averagePrice, &imageURL, &item.IsPublic, &item.AddedBy)
	if err != nil {
		return nil, err
	}

	item.Brand = brand.String
	item.Description = description.String
	item.Specification = specification.String
	item.ImageURL = imageURL.String
	if srp.Valid {
		item.SRP = &srp.Float64
	}
	if averagePrice.Valid {
		item.AveragePrice = &averagePrice.Float64
	}
	return &item, nil
}

// GetByID retrieves a catalog item by ID
func (r *CatalogItemRepository) GetByID(ctx context.Context, id int64) (*models.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM items WHERE id = $1`

	item, err := scanCatalogItem(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("catalog item %d: %w", id, models.ErrNotFound)
		}
		log.Printf("❌ GetByID: Error fetching catalog item: %v", err)
		return nil, storeErr("fetch catalog item", err)
	}
	return item, nil
}

// Filter retrieves catalog items matching the provided filters: the
// actor's own items or all public items, substring-matched on name,
// brand and description, sorted by reference or average price.
func (r *CatalogItemRepository) Filter(ctx context.Context, filter models.CatalogFilter, actorID string) ([]models.CatalogItem, error) {
	log.Printf("🔍 Filter: public=%v, name=%q, brand=%q, desc=%q, sort=%q",
		filter.ViewPublic, filter.Name, filter.Brand, filter.Description, filter.Sort)

	baseQuery := `SELECT ` + catalogColumns + ` FROM items`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.ViewPublic {
		conditions = append(conditions, "is_public = true")
	} else {
		conditions = append(conditions, fmt.Sprintf("added_by = $%d", argIndex))
		args = append(args, actorID)
		argIndex++
	}

	addSubstring := func(column, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		conditions = append(conditions, fmt.Sprintf("COALESCE(%s, '') ILIKE $%d", column, argIndex))
		args = append(args, "%"+strings.TrimSpace(value)+"%")
		argIndex++
	}
	addSubstring("name", filter.Name)
	addSubstring("brand", filter.Brand)
	addSubstring("description", filter.Description)

	baseQuery += " WHERE " + strings.Join(conditions, " AND ")

	switch filter.Sort {
	case models.SortPriceLow:
		baseQuery += " ORDER BY average_price ASC NULLS LAST"
	case models.SortPriceHigh:
		baseQuery += " ORDER BY average_price DESC NULLS LAST"
	case models.SortSRPLow:
		baseQuery += " ORDER BY srp ASC NULLS LAST"
	case models.SortSRPHigh:
		baseQuery += " ORDER BY srp DESC NULLS LAST"
	default:
		baseQuery += " ORDER BY name ASC"
	}

	rows, err := db.DB.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		log.Printf("❌ Filter: Error querying catalog items: %v", err)
		return nil, storeErr("query catalog items", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			log.Printf("❌ Filter: Error scanning catalog item: %v", err)
			continue
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Filter: Error iterating catalog items: %v", err)
		return nil, storeErr("iterate catalog items", err)
	}

	log.Printf("✅ Filter: Found %d catalog items", len(items))
	return items, nil
}

// Create inserts a new catalog item added by actorID
func (r *CatalogItemRepository) Create(ctx context.Context, req *models.CreateCatalogItemRequest, actorID string) (*models.CatalogItem, error) {
	log.Printf("📝 Create: name=%q, added_by=%s, is_public=%v", req.Name, actorID, req.IsPublic)

	query := `
		INSERT INTO items (name, brand, description, specification, srp, is_public, added_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + catalogColumns

	item, err := scanCatalogItem(db.DB.QueryRowContext(ctx, query,
		req.Name, req.Brand, req.Description, req.Specification, req.SRP, req.IsPublic, actorID))
	if err != nil {
		log.Printf("❌ Create: Error inserting catalog item: %v", err)
		return nil, storeErr("create catalog item", err)
	}

	log.Printf("✅ Create: Created catalog item id=%d", item.ID)
	return item, nil
}

// SetImageURL stores the looked-up product image URL for an item
func (r *CatalogItemRepository) SetImageURL(ctx context.Context, id int64, imageURL string) error {
	result, err := db.DB.ExecContext(ctx, `UPDATE items SET image_url = $2 WHERE id = $1`, id, imageURL)
	if err != nil {
		log.Printf("❌ SetImageURL: Error updating image URL: %v", err)
		return storeErr("set image url", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("set image url", err)
	}
	if affected == 0 {
		return fmt.Errorf("catalog item %d: %w", id, models.ErrNotFound)
	}
	return nil
}
