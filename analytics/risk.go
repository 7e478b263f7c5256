package analytics

import (
	"context"
	"time"

	"stocksense/models"
	"stocksense/utils"
)

// ClassifyStock computes the average daily sales rate over a trailing
// window, the estimated days of stock remaining, and a risk tier.
//
// Tier precedence, first match wins: out of stock is Critical, under
// CriticalDaysLeft is Critical, under LowDaysLeft is Low, anything else is
// Safe. A product with stock but no sales in the window has no depletion
// estimate (nil days left); its canonical tier is Safe and consumers
// render it as "No sales data".
func ClassifyStock(quantity, unitsSoldInWindow, windowDays int) (avgDaily float64, daysLeft *float64, risk string) {
	if windowDays <= 0 {
		windowDays = TrailingWindowDays
	}
	avgDaily = float64(unitsSoldInWindow) / float64(windowDays)

	if quantity == 0 {
		zero := 0.0
		return avgDaily, &zero, models.RiskCritical
	}
	if avgDaily == 0 {
		return 0, nil, models.RiskSafe
	}

	left := float64(quantity) / avgDaily
	switch {
	case left < CriticalDaysLeft:
		risk = models.RiskCritical
	case left < LowDaysLeft:
		risk = models.RiskLow
	default:
		risk = models.RiskSafe
	}
	return avgDaily, &left, risk
}

// StockDepletion builds the per-product depletion table from current
// inventory and the trailing sales window.
func (e *Engine) StockDepletion(ctx context.Context) ([]models.StockDepletionRow, error) {
	return e.stockDepletionAt(ctx, e.now().UTC())
}

func (e *Engine) stockDepletionAt(ctx context.Context, now time.Time) ([]models.StockDepletionRow, error) {
	products, err := e.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	windowStart := now.AddDate(0, 0, -TrailingWindowDays)
	lines, err := e.store.ListSaleLines(ctx, windowStart, utils.EndOfDay(now))
	if err != nil {
		return nil, err
	}
	sold := UnitsByProduct(lines)

	rows := make([]models.StockDepletionRow, 0, len(products))
	for _, p := range products {
		avgDaily, daysLeft, risk := ClassifyStock(p.Quantity, sold[p.ID], TrailingWindowDays)
		rows = append(rows, models.StockDepletionRow{
			ProductID:         p.ID,
			ProductName:       p.Name,
			CurrentQuantity:   p.Quantity,
			AvgDailySales:     utils.Round2(avgDaily),
			EstimatedDaysLeft: daysLeft,
			RiskLevel:         risk,
		})
	}
	return rows, nil
}
