package models

import "time"

// Risk tier labels for the stock depletion table.
const (
	RiskSafe     = "Safe"
	RiskLow      = "Low"
	RiskCritical = "Critical"
)

// Stock-out risk scores for persisted demand predictions.
const (
	StockoutLow    = "LOW"
	StockoutMedium = "MEDIUM"
	StockoutHigh   = "HIGH"
)

// Reorder urgency timeframes.
const (
	ReorderImmediately = "Immediately"
	ReorderWithin3Days = "Within 3 days"
	ReorderWithin1Week = "Within 1 week"
)

// DailyRevenuePoint is one calendar day (UTC) of summed sale totals.
// Series of these are contiguous and sorted ascending, zero-filled for
// days with no sales.
type DailyRevenuePoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// ForecastPoint is a DailyRevenuePoint with a provenance flag: historical
// points carry IsForecast=false, projected points true.
type ForecastPoint struct {
	Date       time.Time `json:"date"`
	Revenue    float64   `json:"revenue"`
	IsForecast bool      `json:"is_forecast"`
}

// ForecastSummary is the scalar forecast block for the owner dashboard.
type ForecastSummary struct {
	Next7Days     float64 `json:"next_7_days"`
	Next30Days    float64 `json:"next_30_days"`
	GrowthPercent float64 `json:"growth_percent"`
	LowStockCount int     `json:"low_stock_count"`
}

// StockDepletionRow is a per-product days-left estimate with a risk tier.
// EstimatedDaysLeft is nil when the product has stock but no recent sales.
type StockDepletionRow struct {
	ProductID         string   `json:"product_id"`
	ProductName       string   `json:"product_name"`
	CurrentQuantity   int      `json:"current_quantity"`
	AvgDailySales     float64  `json:"avg_daily_sales"`
	EstimatedDaysLeft *float64 `json:"estimated_days_left"`
	RiskLevel         string   `json:"risk_level"`
}

// ReorderRecommendation is a suggested purchase for a product at risk.
type ReorderRecommendation struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	SuggestedQuantity int    `json:"suggested_quantity"`
	Timeframe         string `json:"timeframe"`
	Reason            string `json:"reason"`
}

// SlowMovingItem is a product with zero sales inside the queried window.
type SlowMovingItem struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	CurrentQuantity   int    `json:"current_quantity"`
	DaysSinceLastSale int    `json:"days_since_last_sale"`
}

// DemandPrediction is a persisted, append-only prediction snapshot.
// Rows are never updated in place; "latest" per product is the row with
// the most recent GeneratedAt.
type DemandPrediction struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	PredictedDemand  float64   `json:"predicted_demand"`
	SuggestedRestock int       `json:"suggested_restock"`
	RiskOfStockout   string    `json:"risk_of_stockout"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// BusinessInsight is one synthesized narrative finding. Insights keep the
// insertion order of the rule that produced them.
type BusinessInsight struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	Impact     string `json:"impact"`
	Confidence int    `json:"confidence"`
}

// ReportMetrics holds the scalar figures the report rules are derived from.
type ReportMetrics struct {
	StockValue      float64 `json:"stock_value"`
	AvgDailyDemand  float64 `json:"avg_daily_demand"`
	DaysOfInventory float64 `json:"days_of_inventory"`
	TotalRevenue    float64 `json:"total_revenue"`
	PriorRevenue    float64 `json:"prior_revenue"`
}

// ReportForecast is the forward-looking block of a business report.
type ReportForecast struct {
	Expected30DayVolume  float64 `json:"expected_30_day_volume"`
	VolumeChangePercent  float64 `json:"volume_change_percent"`
	RevenueChangePercent float64 `json:"revenue_change_percent"`
	ProductsToReorder    int     `json:"products_to_reorder"`
}

// BusinessReport is the full synthesized report for a date window.
type BusinessReport struct {
	GeneratedAt     time.Time         `json:"generated_at"`
	PeriodStart     time.Time         `json:"period_start"`
	PeriodEnd       time.Time         `json:"period_end"`
	Metrics         ReportMetrics     `json:"metrics"`
	Insights        []BusinessInsight `json:"insights"`
	Forecast        ReportForecast    `json:"forecast"`
	Recommendations []string          `json:"recommendations"`
}
