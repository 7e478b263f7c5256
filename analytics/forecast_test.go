package analytics

import (
	"context"
	"testing"
	"time"

	"stocksense/models"
	"stocksense/store/memory"
)

func TestForecastTotalNeverNegative(t *testing.T) {
	declining := []float64{100, 80, 60, 40, 20}
	if total := ForecastTotal(declining, 30); total < 0 {
		t.Fatalf("forecast went negative: %v", total)
	}

	crashed := []float64{500, 300, 100, 0, 0}
	if total := ForecastTotal(crashed, 10); total < 0 {
		t.Fatalf("forecast went negative: %v", total)
	}
}

func TestForecastTotalEmptySeries(t *testing.T) {
	if total := ForecastTotal(nil, 7); total != 0 {
		t.Fatalf("expected 0 for empty series, got %v", total)
	}
}

func TestForecastTotalFlatSeries(t *testing.T) {
	flat := []float64{10, 10, 10, 10}
	total := ForecastTotal(flat, 7)
	if total != 70 {
		t.Fatalf("expected 70 for flat series over 7 days, got %v", total)
	}
}

func TestForecastSeriesStartsDayAfterLast(t *testing.T) {
	last := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	points := ForecastSeries([]float64{10, 10, 10}, last, 5)
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}
	if !points[0].Date.Equal(last.AddDate(0, 0, 1)) {
		t.Fatalf("expected first point on %v, got %v", last.AddDate(0, 0, 1), points[0].Date)
	}
	for _, p := range points {
		if !p.IsForecast {
			t.Fatalf("forecast point not tagged: %+v", p)
		}
		if p.Revenue < 0 {
			t.Fatalf("negative projected revenue: %+v", p)
		}
	}
}

func TestRevenueSeriesRoundTrip(t *testing.T) {
	st := memory.New()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	st.Sales = []models.Sale{
		{ID: "s1", SaleDate: start.Add(12 * time.Hour), TotalAmount: 40},
		{ID: "s2", SaleDate: end.Add(-2 * time.Hour), TotalAmount: 60},
	}

	e := NewEngine(st)
	combined, err := e.RevenueSeries(context.Background(), start, end, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(combined) != 10+7 {
		t.Fatalf("expected 17 points, got %d", len(combined))
	}
	seen := make(map[time.Time]bool)
	for i, p := range combined {
		if seen[p.Date] {
			t.Fatalf("duplicate date %v", p.Date)
		}
		seen[p.Date] = true
		if i > 0 && !p.Date.Equal(combined[i-1].Date.AddDate(0, 0, 1)) {
			t.Fatalf("gap at index %d", i)
		}
	}
	if combined[9].IsForecast {
		t.Fatalf("historical point tagged as forecast")
	}
	if !combined[10].IsForecast {
		t.Fatalf("projected point not tagged as forecast")
	}
}

func TestGrowthPercent(t *testing.T) {
	if g := GrowthPercent(150, 100); g != 50 {
		t.Fatalf("expected 50, got %v", g)
	}
	if g := GrowthPercent(50, 100); g != -50 {
		t.Fatalf("expected -50, got %v", g)
	}
	if g := GrowthPercent(10, 0); g != 100 {
		t.Fatalf("expected 100 for zero baseline with positive value, got %v", g)
	}
	if g := GrowthPercent(0, 0); g != 0 {
		t.Fatalf("expected 0 for zero baseline and zero value, got %v", g)
	}
}

func TestForecastSummary(t *testing.T) {
	st := memory.New()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	// Steady 100/day for the trailing window, nothing before it.
	for i := 0; i < TrailingWindowDays; i++ {
		st.Sales = append(st.Sales, models.Sale{
			ID:          "s" + string(rune('a'+i%26)) + string(rune('0'+i/26)),
			SaleDate:    now.AddDate(0, 0, -i),
			TotalAmount: 100,
		})
	}
	st.Products = []models.Product{
		{ID: "p1", Name: "Hammer", Quantity: 500, UnitPrice: 340},
	}

	e := NewEngine(st)
	e.now = func() time.Time { return now }

	summary, err := e.ForecastSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Next7Days <= 0 || summary.Next30Days <= 0 {
		t.Fatalf("expected positive forecasts, got %+v", summary)
	}
	if summary.Next30Days < summary.Next7Days {
		t.Fatalf("30-day forecast below 7-day: %+v", summary)
	}
	// Prior period had no revenue, so growth reads 100%.
	if summary.GrowthPercent != 100 {
		t.Fatalf("expected 100%% growth against empty prior period, got %v", summary.GrowthPercent)
	}
	if summary.LowStockCount != 0 {
		t.Fatalf("expected no low-stock products, got %d", summary.LowStockCount)
	}
}

func TestForecastSummaryCountsStockedOutProducts(t *testing.T) {
	st := memory.New()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	st.Products = []models.Product{
		{ID: "p1", Name: "Hammer", Quantity: 0},
		{ID: "p2", Name: "Saw", Quantity: 50},
	}

	e := NewEngine(st)
	e.now = func() time.Time { return now }

	summary, err := e.ForecastSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.LowStockCount != 1 {
		t.Fatalf("expected the out-of-stock product counted, got %d", summary.LowStockCount)
	}
}
