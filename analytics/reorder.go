package analytics

import (
	"context"
	"fmt"
	"math"

	"stocksense/models"
	"stocksense/utils"
)

// RecommendReorder proposes a purchase for a single product, or nil when
// the product is not at risk (estimated days left of LowDaysLeft or more
// and stock on hand). The suggested quantity covers lead time plus buffer
// at the current sales rate and never drops below the product's configured
// reorder quantity.
func RecommendReorder(p models.Product, avgDaily float64, daysLeft *float64) *models.ReorderRecommendation {
	atRisk := p.Quantity == 0 || (daysLeft != nil && *daysLeft < LowDaysLeft)
	if !atRisk {
		return nil
	}

	suggested := int(math.Ceil(avgDaily * float64(LeadTimeDays+BufferDays)))
	if suggested < p.ReorderQuantity {
		suggested = p.ReorderQuantity
	}

	timeframe := models.ReorderWithin1Week
	switch {
	case p.Quantity == 0 || (daysLeft != nil && *daysLeft < 0):
		timeframe = models.ReorderImmediately
	case daysLeft != nil && *daysLeft < CriticalDaysLeft:
		timeframe = models.ReorderWithin3Days
	}

	reason := "No recent sales velocity; restock to the configured reorder level."
	if avgDaily > 0 && daysLeft != nil {
		reason = fmt.Sprintf("Selling %.1f units/day on average; stock runs out in about %d days.",
			avgDaily, int(math.Round(*daysLeft)))
	}

	return &models.ReorderRecommendation{
		ProductID:         p.ID,
		ProductName:       p.Name,
		SuggestedQuantity: suggested,
		Timeframe:         timeframe,
		Reason:            reason,
	}
}

// ReorderSuggestions builds recommendations for every at-risk product.
func (e *Engine) ReorderSuggestions(ctx context.Context) ([]models.ReorderRecommendation, error) {
	now := e.now().UTC()
	products, err := e.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := e.store.ListSaleLines(ctx, now.AddDate(0, 0, -TrailingWindowDays), utils.EndOfDay(now))
	if err != nil {
		return nil, err
	}
	sold := UnitsByProduct(lines)

	recommendations := make([]models.ReorderRecommendation, 0)
	for _, p := range products {
		avgDaily, daysLeft, _ := ClassifyStock(p.Quantity, sold[p.ID], TrailingWindowDays)
		if rec := RecommendReorder(p, avgDaily, daysLeft); rec != nil {
			recommendations = append(recommendations, *rec)
		}
	}
	return recommendations, nil
}
