package analytics

import (
	"time"

	"stocksense/models"
	"stocksense/utils"
)

// DailyRevenue collapses ledger rows into one revenue point per UTC
// calendar day across [start, end] inclusive. Days with no sales are
// zero-filled so the series is contiguous and sorted ascending.
func DailyRevenue(sales []models.Sale, start, end time.Time) []models.DailyRevenuePoint {
	first := utils.StartOfDay(start)
	last := utils.StartOfDay(end)
	if last.Before(first) {
		return []models.DailyRevenuePoint{}
	}

	totals := make(map[time.Time]float64)
	cutoff := utils.EndOfDay(end)
	for _, sale := range sales {
		day := utils.StartOfDay(sale.SaleDate)
		if day.Before(first) || sale.SaleDate.UTC().After(cutoff) {
			continue
		}
		totals[day] += sale.TotalAmount
	}

	days := int(last.Sub(first).Hours()/24) + 1
	series := make([]models.DailyRevenuePoint, 0, days)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		series = append(series, models.DailyRevenuePoint{
			Date:    day,
			Revenue: utils.Round2(totals[day]),
		})
	}
	return series
}

// DailyUnits collapses sale lines into one units-sold point per UTC
// calendar day, zero-filled like DailyRevenue.
func DailyUnits(lines []models.SaleLine, start, end time.Time) []float64 {
	first := utils.StartOfDay(start)
	last := utils.StartOfDay(end)
	if last.Before(first) {
		return []float64{}
	}

	totals := make(map[time.Time]int)
	for _, line := range lines {
		day := utils.StartOfDay(line.SaleDate)
		if day.Before(first) || day.After(last) {
			continue
		}
		totals[day] += line.QuantitySold
	}

	series := make([]float64, 0)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		series = append(series, float64(totals[day]))
	}
	return series
}

// UnitsByProduct sums sold quantities per product across the given lines.
func UnitsByProduct(lines []models.SaleLine) map[string]int {
	totals := make(map[string]int)
	for _, line := range lines {
		totals[line.ProductID] += line.QuantitySold
	}
	return totals
}

// Revenues projects a daily revenue series onto its raw values.
func Revenues(series []models.DailyRevenuePoint) []float64 {
	values := make([]float64, len(series))
	for i, point := range series {
		values[i] = point.Revenue
	}
	return values
}
