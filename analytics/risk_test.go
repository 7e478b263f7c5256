package analytics

import (
	"context"
	"math"
	"testing"
	"time"

	"stocksense/models"
	"stocksense/store/memory"
)

func TestClassifyStockOutOfStock(t *testing.T) {
	_, daysLeft, risk := ClassifyStock(0, 120, 30)
	if risk != models.RiskCritical {
		t.Fatalf("expected Critical for zero quantity, got %s", risk)
	}
	if daysLeft == nil || *daysLeft != 0 {
		t.Fatalf("expected 0 days left for zero quantity, got %v", daysLeft)
	}
}

func TestClassifyStockCriticalWindow(t *testing.T) {
	// 50 on hand, 300 sold over 30 days => 10/day => 5 days left.
	avg, daysLeft, risk := ClassifyStock(50, 300, 30)
	if avg != 10 {
		t.Fatalf("expected avg 10, got %v", avg)
	}
	if daysLeft == nil || *daysLeft != 5 {
		t.Fatalf("expected 5 days left, got %v", daysLeft)
	}
	if risk != models.RiskCritical {
		t.Fatalf("expected Critical, got %s", risk)
	}
}

func TestClassifyStockSafe(t *testing.T) {
	// 50 on hand, 90 sold over 30 days => 3/day => ~16.7 days left.
	_, daysLeft, risk := ClassifyStock(50, 90, 30)
	if daysLeft == nil || math.Abs(*daysLeft-50.0/3.0) > 1e-9 {
		t.Fatalf("expected ~16.7 days left, got %v", daysLeft)
	}
	if risk != models.RiskSafe {
		t.Fatalf("expected Safe, got %s", risk)
	}
}

func TestClassifyStockLowTier(t *testing.T) {
	// 100 on hand, 300 sold over 30 days => 10/day => 10 days left.
	_, daysLeft, risk := ClassifyStock(100, 300, 30)
	if daysLeft == nil || *daysLeft != 10 {
		t.Fatalf("expected 10 days left, got %v", daysLeft)
	}
	if risk != models.RiskLow {
		t.Fatalf("expected Low, got %s", risk)
	}
}

// The source behavior for "stock on hand but zero recent sales" was
// inconsistent between call sites; the canonical rule here is Safe with no
// depletion estimate.
func TestClassifyNoSalesData(t *testing.T) {
	avg, daysLeft, risk := ClassifyStock(25, 0, 30)
	if avg != 0 {
		t.Fatalf("expected avg 0, got %v", avg)
	}
	if daysLeft != nil {
		t.Fatalf("expected nil days left with no sales data, got %v", *daysLeft)
	}
	if risk != models.RiskSafe {
		t.Fatalf("expected Safe, got %s", risk)
	}
}

func TestStockDepletionTable(t *testing.T) {
	st := memory.New()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	st.Products = []models.Product{
		{ID: "p1", Name: "Hammer", Quantity: 50},
		{ID: "p2", Name: "Saw", Quantity: 0},
		{ID: "p3", Name: "Wrench", Quantity: 40},
	}
	// 300 hammers sold over the window => 10/day => 5 days left.
	for i := 0; i < 10; i++ {
		st.Sales = append(st.Sales, models.Sale{
			ID:       "s" + string(rune('a'+i)),
			SaleDate: now.AddDate(0, 0, -i-1),
			Items:    []models.SaleItem{{ProductID: "p1", QuantitySold: 30}},
		})
	}

	e := NewEngine(st)
	e.now = func() time.Time { return now }

	rows, err := e.StockDepletion(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected a row per product, got %d", len(rows))
	}

	byID := make(map[string]models.StockDepletionRow)
	for _, row := range rows {
		byID[row.ProductID] = row
	}
	if byID["p1"].RiskLevel != models.RiskCritical {
		t.Fatalf("hammer should be Critical, got %s", byID["p1"].RiskLevel)
	}
	if byID["p2"].RiskLevel != models.RiskCritical {
		t.Fatalf("out-of-stock saw should be Critical, got %s", byID["p2"].RiskLevel)
	}
	if byID["p3"].RiskLevel != models.RiskSafe || byID["p3"].EstimatedDaysLeft != nil {
		t.Fatalf("wrench with no sales should be Safe with nil estimate, got %+v", byID["p3"])
	}
}
