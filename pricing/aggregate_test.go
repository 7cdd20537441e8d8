package pricing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/GeraldTgit/magingwais/models"
)

func fptr(v float64) *float64 { return &v }

func TestUnitPricePrecedence(t *testing.T) {
	line := &models.LineItem{Quantity: 1, SRP: fptr(100)}

	t.Run("SRP-Only", func(t *testing.T) {
		if got := UnitPrice(line); got != 100 {
			t.Errorf("Expected unit price 100, got %v", got)
		}
	})

	t.Run("ActualPrice-Overrides", func(t *testing.T) {
		line.ActualPrice = fptr(80)
		if got := UnitPrice(line); got != 80 {
			t.Errorf("Expected unit price 80, got %v", got)
		}
	})

	t.Run("Null-ActualPrice-Reverts", func(t *testing.T) {
		line.ActualPrice = nil
		if got := UnitPrice(line); got != 100 {
			t.Errorf("Expected unit price to revert to 100, got %v", got)
		}
	})

	t.Run("No-Prices-At-All", func(t *testing.T) {
		empty := &models.LineItem{Quantity: 3}
		if got := UnitPrice(empty); got != 0 {
			t.Errorf("Expected unit price 0 for priceless line, got %v", got)
		}
	})
}

func TestSubtotal(t *testing.T) {
	line := &models.LineItem{Quantity: 2, SRP: fptr(50)}
	if got := Subtotal(line); got != 100 {
		t.Errorf("Expected subtotal 100, got %v", got)
	}

	// A defective quantity of 0 counts as 1, matching the list view.
	zero := &models.LineItem{Quantity: 0, SRP: fptr(30)}
	if got := Subtotal(zero); got != 30 {
		t.Errorf("Expected subtotal 30 for zero-quantity line, got %v", got)
	}
}

func TestListTotalAndChange(t *testing.T) {
	lines := []models.LineItem{
		{Quantity: 2, SRP: fptr(50)},
		{Quantity: 1, SRP: fptr(30)},
	}

	total := ListTotal(lines)
	if total != 130 {
		t.Errorf("Expected total 130, got %v", total)
	}

	if got := Change(fptr(100), total); got != -30 {
		t.Errorf("Expected change -30, got %v", got)
	}

	if got := Change(nil, total); got != -130 {
		t.Errorf("Expected change -130 with unset budget, got %v", got)
	}

	if got := ListTotal(nil); got != 0 {
		t.Errorf("Expected total 0 for empty list, got %v", got)
	}
}

func TestListTotalOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	lines := make([]models.LineItem, 200)
	for i := range lines {
		lines[i] = models.LineItem{
			Quantity: rng.Intn(9) + 1,
			SRP:      fptr(rng.Float64() * 500),
		}
		if rng.Intn(2) == 0 {
			lines[i].ActualPrice = fptr(rng.Float64() * 500)
		}
	}

	want := ListTotal(lines)

	shuffled := make([]models.LineItem, len(lines))
	copy(shuffled, lines)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	got := ListTotal(shuffled)
	if relErr := math.Abs(got-want) / math.Max(math.Abs(want), 1); relErr > 1e-9 {
		t.Errorf("Totals diverge beyond tolerance: %v vs %v (rel err %v)", want, got, relErr)
	}
}
