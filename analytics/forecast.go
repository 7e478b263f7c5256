package analytics

import (
	"context"
	"time"

	"stocksense/models"
	"stocksense/utils"
)

// ForecastTotal projects a daily series forward and returns the summed
// projection: Σ max(0, avg + trend·(len+i)) over the horizon. Negative
// daily projections are floored at zero since units and revenue cannot go
// negative. An empty series forecasts 0.
func ForecastTotal(series []float64, horizonDays int) float64 {
	if len(series) == 0 || horizonDays <= 0 {
		return 0
	}

	var sum float64
	for _, v := range series {
		sum += v
	}
	avg := sum / float64(len(series))
	trend := Slope(series)

	var total float64
	for i := 0; i < horizonDays; i++ {
		projected := avg + trend*float64(len(series)+i)
		if projected > 0 {
			total += projected
		}
	}
	return total
}

// ForecastSeries produces horizonDays projected points starting the day
// after lastDate, each tagged as a forecast.
func ForecastSeries(series []float64, lastDate time.Time, horizonDays int) []models.ForecastPoint {
	points := make([]models.ForecastPoint, 0, horizonDays)
	if horizonDays <= 0 {
		return points
	}

	var avg, trend float64
	if len(series) > 0 {
		var sum float64
		for _, v := range series {
			sum += v
		}
		avg = sum / float64(len(series))
		trend = Slope(series)
	}

	day := utils.StartOfDay(lastDate)
	for i := 0; i < horizonDays; i++ {
		projected := avg + trend*float64(len(series)+i)
		if projected < 0 {
			projected = 0
		}
		day = day.AddDate(0, 0, 1)
		points = append(points, models.ForecastPoint{
			Date:       day,
			Revenue:    utils.Round2(projected),
			IsForecast: true,
		})
	}
	return points
}

// RevenueSeries returns the combined historical + forecast daily revenue
// series for charting: every day in [start, end] from the ledger, then
// horizonDays of projection. The combined series is date-contiguous.
func (e *Engine) RevenueSeries(ctx context.Context, start, end time.Time, horizonDays int) ([]models.ForecastPoint, error) {
	sales, err := e.store.ListSales(ctx, utils.StartOfDay(start), utils.EndOfDay(end))
	if err != nil {
		return nil, err
	}

	historical := DailyRevenue(sales, start, end)
	combined := make([]models.ForecastPoint, 0, len(historical)+horizonDays)
	for _, point := range historical {
		combined = append(combined, models.ForecastPoint{Date: point.Date, Revenue: point.Revenue})
	}
	combined = append(combined, ForecastSeries(Revenues(historical), end, horizonDays)...)
	return combined, nil
}

// ForecastSummary computes the scalar dashboard block: 7- and 30-day
// revenue forecasts from the trailing 30 days, growth against the prior
// period of the same length, and the count of products at or near
// stock-out.
func (e *Engine) ForecastSummary(ctx context.Context) (*models.ForecastSummary, error) {
	now := e.now().UTC()
	windowStart := now.AddDate(0, 0, -TrailingWindowDays+1)
	priorStart := windowStart.AddDate(0, 0, -TrailingWindowDays)
	priorEnd := windowStart.AddDate(0, 0, -1)

	sales, err := e.store.ListSales(ctx, utils.StartOfDay(windowStart), utils.EndOfDay(now))
	if err != nil {
		return nil, err
	}
	priorSales, err := e.store.ListSales(ctx, utils.StartOfDay(priorStart), utils.EndOfDay(priorEnd))
	if err != nil {
		return nil, err
	}

	series := Revenues(DailyRevenue(sales, windowStart, now))
	forecast7 := ForecastTotal(series, 7)
	forecast30 := ForecastTotal(series, 30)

	var priorRevenue float64
	for _, sale := range priorSales {
		priorRevenue += sale.TotalAmount
	}
	growth := GrowthPercent(forecast30, priorRevenue)

	lowStock, err := e.countLowStock(ctx, now)
	if err != nil {
		return nil, err
	}

	return &models.ForecastSummary{
		Next7Days:     utils.Round2(forecast7),
		Next30Days:    utils.Round2(forecast30),
		GrowthPercent: utils.Round1(growth),
		LowStockCount: lowStock,
	}, nil
}

// GrowthPercent compares a value against a prior-period baseline. A zero
// baseline yields 100% when the value is positive, 0% otherwise.
func GrowthPercent(value, baseline float64) float64 {
	if baseline == 0 {
		if value > 0 {
			return 100
		}
		return 0
	}
	return (value - baseline) / baseline * 100
}

// countLowStock counts products that are out of stock or whose estimated
// days left fall inside the supplier lead time.
func (e *Engine) countLowStock(ctx context.Context, now time.Time) (int, error) {
	rows, err := e.stockDepletionAt(ctx, now)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range rows {
		if row.CurrentQuantity == 0 {
			count++
			continue
		}
		if row.EstimatedDaysLeft != nil && *row.EstimatedDaysLeft < LeadTimeDays {
			count++
		}
	}
	return count, nil
}
