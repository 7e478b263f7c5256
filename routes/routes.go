package routes

import (
	"github.com/gofiber/fiber/v2"

	"stocksense/assistant"
	"stocksense/handlers"
	"stocksense/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Insight Routes (owner/admin only) ---
	insights := api.Group("/insights", middleware.JWTMiddleware,
		middleware.RequireRole(assistant.RoleOwner, assistant.RoleAdmin))
	insights.Get("/forecast/summary", handlers.HandleGetForecastSummary)
	insights.Get("/forecast/series", handlers.HandleGetRevenueSeries)
	insights.Get("/stock-depletion", handlers.HandleGetStockDepletion)
	insights.Get("/reorder-suggestions", handlers.HandleGetReorderSuggestions)
	insights.Get("/slow-moving", handlers.HandleGetSlowMoving)
	insights.Get("/report", handlers.HandleGetBusinessReport)
	insights.Post("/report/narrative", handlers.HandleGetReportNarrative)
	insights.Post("/predictions/run", handlers.HandleRunDemandPrediction)
	insights.Get("/predictions/latest", handlers.HandleGetLatestPredictions)

	// --- Chat Assistant ---
	api.Post("/chat", middleware.JWTMiddleware, handlers.HandleChat)
}
