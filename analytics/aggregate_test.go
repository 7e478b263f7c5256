package analytics

import (
	"testing"
	"time"

	"stocksense/models"
)

func day(yday int) time.Time {
	return time.Date(2025, 6, yday, 0, 0, 0, 0, time.UTC)
}

func TestDailyRevenueContiguousAndZeroFilled(t *testing.T) {
	sales := []models.Sale{
		{ID: "s1", SaleDate: day(1).Add(9 * time.Hour), TotalAmount: 100},
		{ID: "s2", SaleDate: day(1).Add(15 * time.Hour), TotalAmount: 50.5},
		{ID: "s3", SaleDate: day(3).Add(23*time.Hour + 30*time.Minute), TotalAmount: 200},
		// Outside the range, must be ignored.
		{ID: "s4", SaleDate: day(9), TotalAmount: 999},
	}

	series := DailyRevenue(sales, day(1), day(5))
	if len(series) != 5 {
		t.Fatalf("expected 5 points, got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Date.Equal(series[i-1].Date.AddDate(0, 0, 1)) {
			t.Fatalf("dates not contiguous at index %d: %v after %v", i, series[i].Date, series[i-1].Date)
		}
	}

	var total float64
	for _, p := range series {
		total += p.Revenue
	}
	if total != 350.5 {
		t.Fatalf("expected total 350.5, got %v", total)
	}
	if series[1].Revenue != 0 || series[3].Revenue != 0 {
		t.Fatalf("expected zero-filled gap days, got %v and %v", series[1].Revenue, series[3].Revenue)
	}
}

func TestDailyRevenueIncludesWholeEndDay(t *testing.T) {
	sales := []models.Sale{
		{ID: "s1", SaleDate: day(2).Add(23*time.Hour + 59*time.Minute), TotalAmount: 75},
	}
	series := DailyRevenue(sales, day(1), day(2))
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if series[1].Revenue != 75 {
		t.Fatalf("sale late on the end day was dropped: %v", series[1].Revenue)
	}
}

func TestDailyRevenueInvertedRange(t *testing.T) {
	series := DailyRevenue(nil, day(5), day(1))
	if len(series) != 0 {
		t.Fatalf("expected empty series for inverted range, got %d points", len(series))
	}
}

func TestUnitsByProduct(t *testing.T) {
	lines := []models.SaleLine{
		{ProductID: "p1", QuantitySold: 3, SaleDate: day(1)},
		{ProductID: "p2", QuantitySold: 1, SaleDate: day(1)},
		{ProductID: "p1", QuantitySold: 4, SaleDate: day(2)},
	}
	totals := UnitsByProduct(lines)
	if totals["p1"] != 7 || totals["p2"] != 1 {
		t.Fatalf("unexpected totals: %v", totals)
	}
}

func TestDailyUnits(t *testing.T) {
	lines := []models.SaleLine{
		{ProductID: "p1", QuantitySold: 3, SaleDate: day(1).Add(10 * time.Hour)},
		{ProductID: "p2", QuantitySold: 2, SaleDate: day(3)},
	}
	series := DailyUnits(lines, day(1), day(3))
	want := []float64{3, 0, 2}
	if len(series) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(series))
	}
	for i := range want {
		if series[i] != want[i] {
			t.Fatalf("day %d: expected %v, got %v", i, want[i], series[i])
		}
	}
}
