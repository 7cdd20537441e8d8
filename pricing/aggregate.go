package pricing

import "github.com/GeraldTgit/magingwais/models"

// Pure aggregate calculations over a list's current line items.
// Nothing here is persisted; totals are always derived from row state
// at read time, so there is no cache to invalidate.

// UnitPrice returns the effective unit price of a line: the owner's
// actual price when set, otherwise the catalog reference price (SRP),
// otherwise 0.
func UnitPrice(line *models.LineItem) float64 {
	if line.ActualPrice != nil {
		return *line.ActualPrice
	}
	if line.SRP != nil {
		return *line.SRP
	}
	return 0
}

// Subtotal returns UnitPrice × quantity for one line. A quantity below
// 1 never reaches the store, but tolerate it here by clamping to 1 the
// same way the list view does.
func Subtotal(line *models.LineItem) float64 {
	qty := line.Quantity
	if qty < 1 {
		qty = 1
	}
	return UnitPrice(line) * float64(qty)
}

// ListTotal sums the subtotals of all lines. Order-independent up to
// floating point accumulation.
func ListTotal(lines []models.LineItem) float64 {
	var total float64
	for i := range lines {
		total += Subtotal(&lines[i])
	}
	return total
}

// Change returns the remaining budget: budget − total. Negative means
// over budget. A nil budget counts as 0, yielding −total.
func Change(budget *float64, total float64) float64 {
	if budget == nil {
		return -total
	}
	return *budget - total
}
