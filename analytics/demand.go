package analytics

import (
	"context"
	"log"
	"math"

	"stocksense/models"
	"stocksense/utils"
)

// PredictDemand computes a single product's moving-average demand
// projection for daysAhead days, with a coarse 3-tier stock-out score.
func PredictDemand(p models.Product, unitsSoldInWindow, daysAhead int) (predicted float64, restock int, risk string) {
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}
	avgDaily := float64(unitsSoldInWindow) / float64(TrailingWindowDays)
	predicted = utils.Round2(avgDaily * float64(daysAhead))

	threshold := DefaultLowStockThreshold
	if p.LowStockThreshold != nil {
		threshold = *p.LowStockThreshold
	}

	restock = int(math.Ceil(predicted + float64(threshold) - float64(p.Quantity)))
	if restock < 0 {
		restock = 0
	}

	switch {
	case p.Quantity < threshold:
		risk = models.StockoutHigh
	case float64(p.Quantity) < predicted+float64(threshold):
		risk = models.StockoutMedium
	default:
		risk = models.StockoutLow
	}
	return predicted, restock, risk
}

// RunDemandPrediction appends one fresh prediction snapshot per product.
// Existing snapshots are never touched; a failure midway leaves earlier
// products with a new snapshot and later ones without, which the next run
// repairs.
func (e *Engine) RunDemandPrediction(ctx context.Context, daysAhead int) ([]models.DemandPrediction, error) {
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}
	now := e.now().UTC()
	windowStart := now.AddDate(0, 0, -TrailingWindowDays)

	products, err := e.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := e.store.ListSaleLines(ctx, windowStart, utils.EndOfDay(now))
	if err != nil {
		return nil, err
	}
	sold := UnitsByProduct(lines)

	created := make([]models.DemandPrediction, 0, len(products))
	for _, p := range products {
		predicted, restock, risk := PredictDemand(p, sold[p.ID], daysAhead)
		snapshot, err := e.store.CreateDemandPrediction(ctx, models.DemandPrediction{
			ProductID:        p.ID,
			PredictedDemand:  predicted,
			SuggestedRestock: restock,
			RiskOfStockout:   risk,
			PeriodStart:      windowStart,
			PeriodEnd:        now.AddDate(0, 0, daysAhead),
			GeneratedAt:      now,
		})
		if err != nil {
			log.Printf("❌ [PREDICT] Failed to persist snapshot for %s: %v", p.ID, err)
			return created, err
		}
		created = append(created, *snapshot)
	}
	return created, nil
}

// LatestPredictions returns the most recent snapshot per product, derived
// from the store's generated-at-descending listing.
func (e *Engine) LatestPredictions(ctx context.Context) ([]models.DemandPrediction, error) {
	all, err := e.store.ListDemandPredictions(ctx, 0)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	latest := make([]models.DemandPrediction, 0)
	for _, p := range all {
		if seen[p.ProductID] {
			continue
		}
		seen[p.ProductID] = true
		latest = append(latest, p)
	}
	return latest, nil
}
