package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"stocksense/analytics"
	"stocksense/utils"
)

// HandleGetForecastSummary returns the scalar forecast block for the
// owner dashboard.
func HandleGetForecastSummary(c *fiber.Ctx) error {
	summary, err := engine.ForecastSummary(c.Context())
	if err != nil {
		log.Printf("❌ [FORECAST] Summary failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute forecast summary"})
	}
	return c.JSON(fiber.Map{"success": true, "data": summary})
}

// HandleGetRevenueSeries returns the combined historical + forecast daily
// revenue series. The window is either ?window=30|90 trailing days or an
// explicit ?startDate&endDate range; malformed dates fall back to the
// trailing 30 days.
func HandleGetRevenueSeries(c *fiber.Ctx) error {
	now := time.Now().UTC()
	windowDays := 30
	if w, err := strconv.Atoi(c.Query("window", "30")); err == nil && (w == 30 || w == 90) {
		windowDays = w
	}

	start := utils.ParseDateOr(c.Query("startDate"), now.AddDate(0, 0, -windowDays+1))
	end := utils.ParseDateOr(c.Query("endDate"), now)
	if end.Before(start) {
		start, end = now.AddDate(0, 0, -windowDays+1), now
	}

	horizon, err := strconv.Atoi(c.Query("horizon", strconv.Itoa(analytics.TrailingWindowDays)))
	if err != nil || horizon < 1 {
		horizon = analytics.TrailingWindowDays
	}

	series, err := engine.RevenueSeries(c.Context(), start, end, horizon)
	if err != nil {
		log.Printf("❌ [FORECAST] Series failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute revenue series"})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"series": series}})
}

// HandleGetStockDepletion returns the per-product days-left table.
func HandleGetStockDepletion(c *fiber.Ctx) error {
	rows, err := engine.StockDepletion(c.Context())
	if err != nil {
		log.Printf("❌ [RISK] Stock depletion failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute stock depletion"})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"rows": rows}})
}

// HandleGetReorderSuggestions returns reorder recommendations for at-risk
// products.
func HandleGetReorderSuggestions(c *fiber.Ctx) error {
	recommendations, err := engine.ReorderSuggestions(c.Context())
	if err != nil {
		log.Printf("❌ [REORDER] Suggestions failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute reorder suggestions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"recommendations": recommendations}})
}

// HandleGetSlowMoving returns products with no sales in the queried
// window (?windowDays, clamped to 7-90, default 30).
func HandleGetSlowMoving(c *fiber.Ctx) error {
	windowDays, err := strconv.Atoi(c.Query("windowDays", "30"))
	if err != nil {
		windowDays = 30
	}
	items, err := engine.SlowMoving(c.Context(), windowDays)
	if err != nil {
		log.Printf("❌ [DEADSTOCK] Slow-moving scan failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to find slow-moving products"})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"items": items}})
}

// HandleGetBusinessReport synthesizes the narrative report for
// [?startDate, ?endDate], defaulting to the trailing 30 days.
func HandleGetBusinessReport(c *fiber.Ctx) error {
	now := time.Now().UTC()
	start := utils.ParseDateOr(c.Query("startDate"), now.AddDate(0, 0, -analytics.TrailingWindowDays+1))
	end := utils.ParseDateOr(c.Query("endDate"), now)
	if end.Before(start) {
		start, end = now.AddDate(0, 0, -analytics.TrailingWindowDays+1), now
	}

	log.Printf("📊 [REPORT] Request - StartDate: %s, EndDate: %s", start.Format("2006-01-02"), end.Format("2006-01-02"))

	report, err := engine.BusinessReport(c.Context(), start, end)
	if err != nil {
		log.Printf("❌ [REPORT] Failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate business report"})
	}
	return c.JSON(fiber.Map{"success": true, "data": report})
}

// HandleRunDemandPrediction appends a fresh prediction snapshot per
// product (?daysAhead, default 7).
func HandleRunDemandPrediction(c *fiber.Ctx) error {
	daysAhead, err := strconv.Atoi(c.Query("daysAhead", strconv.Itoa(analytics.DefaultDaysAhead)))
	if err != nil || daysAhead < 1 {
		daysAhead = analytics.DefaultDaysAhead
	}

	created, err := engine.RunDemandPrediction(c.Context(), daysAhead)
	if err != nil {
		log.Printf("❌ [PREDICT] Run failed after %d snapshot(s): %v", len(created), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to run demand prediction"})
	}
	log.Printf("✅ [PREDICT] Created %d snapshot(s)", len(created))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"predictions": created}})
}

// HandleGetLatestPredictions returns the most recent snapshot per product.
func HandleGetLatestPredictions(c *fiber.Ctx) error {
	latest, err := engine.LatestPredictions(c.Context())
	if err != nil {
		log.Printf("❌ [PREDICT] Latest fetch failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch latest predictions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"predictions": latest}})
}
