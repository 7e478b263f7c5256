package analytics

import (
	"context"
	"time"

	"stocksense/models"
	"stocksense/utils"
)

// SlowMoving flags products with zero sales inside the trailing window.
// The window is clamped to [SlowMovingMinWindow, SlowMovingMaxWindow]
// days. DaysSinceLastSale comes from the most recent sale ever recorded
// for the product; a product with no sales at all reports the window size.
func (e *Engine) SlowMoving(ctx context.Context, windowDays int) ([]models.SlowMovingItem, error) {
	if windowDays < SlowMovingMinWindow {
		windowDays = SlowMovingMinWindow
	}
	if windowDays > SlowMovingMaxWindow {
		windowDays = SlowMovingMaxWindow
	}

	now := e.now().UTC()
	products, err := e.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	// All-history lines: the window decides who is slow-moving, the full
	// history decides how long ago the last sale was.
	lines, err := e.store.ListSaleLines(ctx, time.Time{}, utils.EndOfDay(now))
	if err != nil {
		return nil, err
	}

	windowStart := now.AddDate(0, 0, -windowDays)
	soldInWindow := make(map[string]bool)
	lastSale := make(map[string]time.Time)
	for _, line := range lines {
		if line.SaleDate.After(windowStart) {
			soldInWindow[line.ProductID] = true
		}
		if line.SaleDate.After(lastSale[line.ProductID]) {
			lastSale[line.ProductID] = line.SaleDate
		}
	}

	items := make([]models.SlowMovingItem, 0)
	for _, p := range products {
		if soldInWindow[p.ID] {
			continue
		}
		daysSince := windowDays
		if last, ok := lastSale[p.ID]; ok {
			daysSince = int(now.Sub(last).Hours() / 24)
		}
		items = append(items, models.SlowMovingItem{
			ProductID:         p.ID,
			ProductName:       p.Name,
			CurrentQuantity:   p.Quantity,
			DaysSinceLastSale: daysSince,
		})
	}
	return items, nil
}
