package analytics

import (
	"context"
	"testing"
	"time"

	"stocksense/models"
	"stocksense/store/memory"
)

func strPtr(s string) *string { return &s }

func TestBusinessReportFallbacks(t *testing.T) {
	st := memory.New()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	e := NewEngine(st)
	e.now = func() time.Time { return now }

	report, err := e.BusinessReport(context.Background(), now.AddDate(0, 0, -29), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Insights) != 1 || report.Insights[0].Title != "Data Collection Phase" {
		t.Fatalf("expected the fallback insight on an empty store, got %+v", report.Insights)
	}
	if len(report.Recommendations) != 1 {
		t.Fatalf("expected the fallback recommendation, got %+v", report.Recommendations)
	}
}

func TestBusinessReportRules(t *testing.T) {
	st := memory.New()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	st.Products = []models.Product{
		{ID: "p1", Name: "Hammer", Category: strPtr("Tools"), UnitPrice: 340, Quantity: 10, ReorderQuantity: 20},
		{ID: "p2", Name: "Paint", Category: strPtr("Finishes"), UnitPrice: 150, Quantity: 80},
	}
	// Hammers sell 5/day: 10 on hand won't last the lead time.
	for i := 0; i < 20; i++ {
		st.Sales = append(st.Sales, models.Sale{
			ID:          "s" + string(rune('a'+i)),
			SaleDate:    now.AddDate(0, 0, -i-1),
			TotalAmount: 5 * 340,
			Items:       []models.SaleItem{{ProductID: "p1", QuantitySold: 5, UnitPrice: 340}},
		})
	}
	// One slow paint sale.
	st.Sales = append(st.Sales, models.Sale{
		ID: "sp", SaleDate: now.AddDate(0, 0, -10), TotalAmount: 150,
		Items: []models.SaleItem{{ProductID: "p2", QuantitySold: 1, UnitPrice: 150}},
	})
	st.Predictions = []models.DemandPrediction{
		{ID: "d1", ProductID: "p1", PredictedDemand: 35, SuggestedRestock: 40,
			RiskOfStockout: models.StockoutHigh, GeneratedAt: now.Add(-time.Hour)},
	}

	e := NewEngine(st)
	e.now = func() time.Time { return now }

	report, err := e.BusinessReport(context.Background(), now.AddDate(0, 0, -29), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	titles := make([]string, 0, len(report.Insights))
	for _, insight := range report.Insights {
		titles = append(titles, insight.Title)
	}
	wantTitles := map[string]bool{
		"Rising Demand":               false,
		"Monthly Revenue Projection":  false,
		"Category Growth Opportunity": false,
		"Slow-Moving Inventory":       false,
		"Optimal Reorder Window":      false,
		"Stockout Risk":               false,
	}
	for _, title := range titles {
		if _, ok := wantTitles[title]; ok {
			wantTitles[title] = true
		}
	}
	for title, seen := range wantTitles {
		if !seen {
			t.Fatalf("expected insight %q, got %v", title, titles)
		}
	}

	// Rule order, not confidence order.
	if titles[0] != "Rising Demand" {
		t.Fatalf("insights must keep rule order, got %v", titles)
	}

	if report.Forecast.ProductsToReorder != 1 {
		t.Fatalf("expected 1 product to reorder, got %d", report.Forecast.ProductsToReorder)
	}
	if report.Forecast.Expected30DayVolume <= 0 {
		t.Fatalf("expected positive 30-day volume, got %v", report.Forecast.Expected30DayVolume)
	}
	if len(report.Recommendations) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	if report.Metrics.StockValue != 10*340+80*150 {
		t.Fatalf("unexpected stock value %v", report.Metrics.StockValue)
	}
}
