package analytics

import (
	"context"
	"testing"
	"time"

	"stocksense/models"
	"stocksense/store/memory"
)

func TestSlowMoving(t *testing.T) {
	st := memory.New()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	st.Products = []models.Product{
		{ID: "p1", Name: "Hammer", Quantity: 50},
		{ID: "p2", Name: "Saw", Quantity: 12},
		{ID: "p3", Name: "Wrench", Quantity: 8},
	}
	st.Sales = []models.Sale{
		// Hammer sold inside the window: not slow-moving.
		{ID: "s1", SaleDate: now.AddDate(0, 0, -5),
			Items: []models.SaleItem{{ProductID: "p1", QuantitySold: 2}}},
		// Saw last sold 45 days ago: slow-moving with a known last sale.
		{ID: "s2", SaleDate: now.AddDate(0, 0, -45),
			Items: []models.SaleItem{{ProductID: "p2", QuantitySold: 1}}},
	}

	e := NewEngine(st)
	e.now = func() time.Time { return now }

	items, err := e.SlowMoving(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 slow movers, got %d", len(items))
	}

	byID := make(map[string]models.SlowMovingItem)
	for _, item := range items {
		byID[item.ProductID] = item
	}
	if byID["p2"].DaysSinceLastSale != 45 {
		t.Fatalf("expected 45 days since last saw sale, got %d", byID["p2"].DaysSinceLastSale)
	}
	// Never sold: reports the window size itself.
	if byID["p3"].DaysSinceLastSale != 30 {
		t.Fatalf("expected window size for never-sold product, got %d", byID["p3"].DaysSinceLastSale)
	}
}

func TestSlowMovingWindowClamp(t *testing.T) {
	st := memory.New()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	st.Products = []models.Product{{ID: "p1", Name: "Hammer", Quantity: 5}}

	e := NewEngine(st)
	e.now = func() time.Time { return now }

	// Window below the minimum is clamped to 7.
	items, err := e.SlowMoving(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].DaysSinceLastSale != SlowMovingMinWindow {
		t.Fatalf("expected clamp to %d, got %+v", SlowMovingMinWindow, items)
	}

	// Window above the maximum is clamped to 90.
	items, err = e.SlowMoving(context.Background(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].DaysSinceLastSale != SlowMovingMaxWindow {
		t.Fatalf("expected clamp to %d, got %+v", SlowMovingMaxWindow, items)
	}
}
