package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stocksense/models"
	"stocksense/utils"
)

// BusinessReport synthesizes the narrative report for [start, end]:
// headline metrics, an ordered list of rule-driven insights, a forecast
// block, and a recommendations list. The comparison baseline is always the
// period of the same length immediately before the window. Always returns
// at least one insight and one recommendation.
func (e *Engine) BusinessReport(ctx context.Context, start, end time.Time) (*models.BusinessReport, error) {
	start = utils.StartOfDay(start)
	end = utils.EndOfDay(end)
	windowDays := int(utils.StartOfDay(end).Sub(start).Hours()/24) + 1
	priorEnd := start.Add(-time.Millisecond)
	priorStart := start.AddDate(0, 0, -windowDays)

	products, err := e.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := e.store.ListSales(ctx, start, end)
	if err != nil {
		return nil, err
	}
	priorSales, err := e.store.ListSales(ctx, priorStart, priorEnd)
	if err != nil {
		return nil, err
	}
	lines, err := e.store.ListSaleLines(ctx, start, end)
	if err != nil {
		return nil, err
	}
	priorLines, err := e.store.ListSaleLines(ctx, priorStart, priorEnd)
	if err != nil {
		return nil, err
	}
	latest, err := e.LatestPredictions(ctx)
	if err != nil {
		return nil, err
	}

	metrics := computeMetrics(products, sales, priorSales, lines, windowDays)
	sold := UnitsByProduct(lines)
	recommendationsForStock := reorderList(products, sold)

	report := &models.BusinessReport{
		GeneratedAt: e.now().UTC(),
		PeriodStart: start,
		PeriodEnd:   end,
		Metrics:     metrics,
	}
	report.Insights = buildInsights(insightInputs{
		metrics:      metrics,
		products:     products,
		sold:         sold,
		windowDays:   windowDays,
		reorders:     recommendationsForStock,
		predictions:  latest,
		revenueDaily: Revenues(DailyRevenue(sales, start, end)),
	})
	report.Forecast = buildReportForecast(lines, priorLines, start, end, priorStart, priorEnd, metrics, len(recommendationsForStock))
	report.Recommendations = buildRecommendations(metrics, recommendationsForStock, products, sold, latest, windowDays)
	return report, nil
}

func computeMetrics(products []models.Product, sales, priorSales []models.Sale, lines []models.SaleLine, windowDays int) models.ReportMetrics {
	stockValue := decimal.Zero
	totalStockUnits := 0
	for _, p := range products {
		stockValue = stockValue.Add(decimal.NewFromFloat(p.UnitPrice).Mul(decimal.NewFromInt(int64(p.Quantity))))
		totalStockUnits += p.Quantity
	}

	var revenue, prior float64
	for _, s := range sales {
		revenue += s.TotalAmount
	}
	for _, s := range priorSales {
		prior += s.TotalAmount
	}

	unitsSold := 0
	for _, line := range lines {
		unitsSold += line.QuantitySold
	}
	avgDailyDemand := float64(unitsSold) / float64(windowDays)

	daysOfInventory := 0.0
	switch {
	case avgDailyDemand > 0:
		daysOfInventory = float64(totalStockUnits) / avgDailyDemand
	case totalStockUnits > 0:
		daysOfInventory = InfiniteDays
	}

	value, _ := stockValue.Round(2).Float64()
	return models.ReportMetrics{
		StockValue:      value,
		AvgDailyDemand:  utils.Round2(avgDailyDemand),
		DaysOfInventory: utils.Round1(daysOfInventory),
		TotalRevenue:    utils.Round2(revenue),
		PriorRevenue:    utils.Round2(prior),
	}
}

func reorderList(products []models.Product, sold map[string]int) []models.ReorderRecommendation {
	recommendations := make([]models.ReorderRecommendation, 0)
	for _, p := range products {
		avgDaily, daysLeft, _ := ClassifyStock(p.Quantity, sold[p.ID], TrailingWindowDays)
		if rec := RecommendReorder(p, avgDaily, daysLeft); rec != nil {
			recommendations = append(recommendations, *rec)
		}
	}
	return recommendations
}

type insightInputs struct {
	metrics      models.ReportMetrics
	products     []models.Product
	sold         map[string]int
	windowDays   int
	reorders     []models.ReorderRecommendation
	predictions  []models.DemandPrediction
	revenueDaily []float64
}

// buildInsights applies the rule sequence in a fixed order; each rule
// appends at most one insight. Insight order is rule order, not a
// confidence sort.
func buildInsights(in insightInputs) []models.BusinessInsight {
	insights := make([]models.BusinessInsight, 0)

	if len(in.reorders) > 0 {
		insights = append(insights, models.BusinessInsight{
			Title:      "Rising Demand",
			Text:       fmt.Sprintf("%d product(s) are selling faster than stock can cover and will need restocking within two weeks.", len(in.reorders)),
			Impact:     "High",
			Confidence: 80,
		})
	}

	if in.metrics.TotalRevenue > 0 {
		projected := ForecastTotal(in.revenueDaily, TrailingWindowDays)
		change := GrowthPercent(projected, in.metrics.PriorRevenue)
		insights = append(insights, models.BusinessInsight{
			Title: "Monthly Revenue Projection",
			Text: fmt.Sprintf("Projected revenue for the next 30 days is %s (%s vs the prior period).",
				utils.FormatPeso(projected), utils.FormatPercent(change)),
			Impact:     "Medium",
			Confidence: 70,
		})
	}

	if in.metrics.DaysOfInventory > OverstockDaysOfInventory {
		insights = append(insights, models.BusinessInsight{
			Title:      "Overstock Alert",
			Text:       fmt.Sprintf("Current stock covers about %.0f days of demand; capital is tied up in slow inventory.", in.metrics.DaysOfInventory),
			Impact:     "Medium",
			Confidence: 65,
		})
	}

	if category, units := topCategory(in.products, in.sold); category != "" {
		insights = append(insights, models.BusinessInsight{
			Title:      "Category Growth Opportunity",
			Text:       fmt.Sprintf("%s leads all categories with %d units sold this period; consider widening its range.", category, units),
			Impact:     "Medium",
			Confidence: 60,
		})
	}

	if slow := countSlowSellers(in.products, in.sold, in.windowDays); slow > 0 {
		insights = append(insights, models.BusinessInsight{
			Title:      "Slow-Moving Inventory",
			Text:       fmt.Sprintf("%d product(s) sold under 1 unit/day on average; consider promotions or markdowns.", slow),
			Impact:     "Low",
			Confidence: 75,
		})
	}

	if len(in.reorders) > 0 {
		spend := reorderSpend(in.reorders, in.products)
		insights = append(insights, models.BusinessInsight{
			Title:      "Optimal Reorder Window",
			Text:       fmt.Sprintf("Placing all %d suggested reorders now costs an estimated %s and avoids stock-outs inside the lead time.", len(in.reorders), utils.FormatPeso(spend)),
			Impact:     "High",
			Confidence: 85,
		})
	}

	if high := countHighRisk(in.predictions); high > 0 {
		insights = append(insights, models.BusinessInsight{
			Title:      "Stockout Risk",
			Text:       fmt.Sprintf("%d product(s) carry a HIGH stock-out risk in the latest demand predictions.", high),
			Impact:     "High",
			Confidence: 90,
		})
	}

	if len(insights) == 0 {
		insights = append(insights, models.BusinessInsight{
			Title:      "Data Collection Phase",
			Text:       "Not enough transaction history yet to surface trends; insights sharpen as more sales are recorded.",
			Impact:     "Low",
			Confidence: 50,
		})
	}
	return insights
}

func buildReportForecast(lines, priorLines []models.SaleLine, start, end, priorStart, priorEnd time.Time, metrics models.ReportMetrics, reorderCount int) models.ReportForecast {
	unitsDaily := DailyUnits(lines, start, end)
	windowUnits := 0.0
	for _, v := range unitsDaily {
		windowUnits += v
	}
	priorUnits := 0.0
	for _, v := range DailyUnits(priorLines, priorStart, priorEnd) {
		priorUnits += v
	}

	return models.ReportForecast{
		Expected30DayVolume:  utils.Round2(ForecastTotal(unitsDaily, TrailingWindowDays)),
		VolumeChangePercent:  utils.Round1(GrowthPercent(windowUnits, priorUnits)),
		RevenueChangePercent: utils.Round1(GrowthPercent(metrics.TotalRevenue, metrics.PriorRevenue)),
		ProductsToReorder:    reorderCount,
	}
}

func buildRecommendations(metrics models.ReportMetrics, reorders []models.ReorderRecommendation, products []models.Product, sold map[string]int, predictions []models.DemandPrediction, windowDays int) []string {
	recommendations := make([]string, 0)

	if len(reorders) > 0 {
		spend := reorderSpend(reorders, products)
		recommendations = append(recommendations,
			fmt.Sprintf("Place purchase orders for %d low-stock product(s); estimated total spend %s.", len(reorders), utils.FormatPeso(spend)))
	}
	if slow := countSlowSellers(products, sold, windowDays); slow > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Run promotions to move %d slow-selling product(s).", slow))
	}
	if metrics.DaysOfInventory > OverstockDaysOfInventory {
		recommendations = append(recommendations,
			"Pause replenishment on overstocked lines until cover drops to a healthy range.")
	}
	if high := countHighRisk(predictions); high > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Expedite restocking for %d product(s) flagged HIGH stock-out risk.", high))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Maintain Operations: stock levels and sales velocity are balanced; no action needed.")
	}
	return recommendations
}

func topCategory(products []models.Product, sold map[string]int) (string, int) {
	totals := make(map[string]int)
	for _, p := range products {
		if p.Category == nil || sold[p.ID] == 0 {
			continue
		}
		totals[*p.Category] += sold[p.ID]
	}
	best, bestUnits := "", 0
	for category, units := range totals {
		if units > bestUnits || (units == bestUnits && category < best) {
			best, bestUnits = category, units
		}
	}
	return best, bestUnits
}

func countSlowSellers(products []models.Product, sold map[string]int, windowDays int) int {
	count := 0
	for _, p := range products {
		units := sold[p.ID]
		if units > 0 && float64(units)/float64(windowDays) < 1 {
			count++
		}
	}
	return count
}

func countHighRisk(predictions []models.DemandPrediction) int {
	count := 0
	for _, p := range predictions {
		if p.RiskOfStockout == models.StockoutHigh {
			count++
		}
	}
	return count
}

func reorderSpend(reorders []models.ReorderRecommendation, products []models.Product) float64 {
	prices := make(map[string]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.UnitPrice
	}
	total := decimal.Zero
	for _, rec := range reorders {
		total = total.Add(decimal.NewFromFloat(prices[rec.ProductID]).Mul(decimal.NewFromInt(int64(rec.SuggestedQuantity))))
	}
	spend, _ := total.Round(2).Float64()
	return spend
}
