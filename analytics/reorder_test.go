package analytics

import (
	"strings"
	"testing"

	"stocksense/models"
)

func TestRecommendReorderSkipsSafeProduct(t *testing.T) {
	p := models.Product{ID: "p1", Name: "Hammer", Quantity: 100, ReorderQuantity: 10}
	daysLeft := 50.0
	if rec := RecommendReorder(p, 2, &daysLeft); rec != nil {
		t.Fatalf("expected no recommendation for a safe product, got %+v", rec)
	}
}

func TestRecommendReorderQuantityFloor(t *testing.T) {
	// Slow mover: 0.1/day over 14 days of cover rounds to 2, below the
	// configured reorder quantity of 25.
	p := models.Product{ID: "p1", Name: "Hammer", Quantity: 1, ReorderQuantity: 25}
	daysLeft := 10.0
	rec := RecommendReorder(p, 0.1, &daysLeft)
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.SuggestedQuantity != 25 {
		t.Fatalf("suggested quantity %d fell below configured reorder quantity 25", rec.SuggestedQuantity)
	}
}

func TestRecommendReorderVelocityQuantity(t *testing.T) {
	// 10/day over lead+buffer (14 days) => 140, above the configured 50.
	p := models.Product{ID: "p1", Name: "Hammer", Quantity: 50, ReorderQuantity: 50}
	daysLeft := 5.0
	rec := RecommendReorder(p, 10, &daysLeft)
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.SuggestedQuantity != 140 {
		t.Fatalf("expected 140, got %d", rec.SuggestedQuantity)
	}
	if rec.Timeframe != models.ReorderWithin3Days {
		t.Fatalf("expected %q, got %q", models.ReorderWithin3Days, rec.Timeframe)
	}
	if !strings.Contains(rec.Reason, "10.0 units/day") {
		t.Fatalf("reason should embed the sales rate: %q", rec.Reason)
	}
}

func TestRecommendReorderTimeframes(t *testing.T) {
	outOfStock := models.Product{ID: "p1", Name: "Hammer", Quantity: 0, ReorderQuantity: 5}
	zero := 0.0
	rec := RecommendReorder(outOfStock, 0, &zero)
	if rec == nil || rec.Timeframe != models.ReorderImmediately {
		t.Fatalf("out of stock should reorder immediately, got %+v", rec)
	}
	if !strings.Contains(rec.Reason, "No recent sales velocity") {
		t.Fatalf("expected the no-velocity fallback reason, got %q", rec.Reason)
	}

	lowish := models.Product{ID: "p2", Name: "Saw", Quantity: 30, ReorderQuantity: 5}
	daysLeft := 10.0
	rec = RecommendReorder(lowish, 3, &daysLeft)
	if rec == nil || rec.Timeframe != models.ReorderWithin1Week {
		t.Fatalf("10 days left should be within 1 week, got %+v", rec)
	}
}
