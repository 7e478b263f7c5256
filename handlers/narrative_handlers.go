package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"stocksense/analytics"
	"stocksense/config"
	"stocksense/utils"
)

// HandleGetReportNarrative runs the business report for the requested
// window and asks Gemini to turn it into short owner-facing prose. The
// report itself is deterministic; this endpoint only rewords it, and
// returns 503 when no API key is configured.
func HandleGetReportNarrative(c *fiber.Ctx) error {
	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "AI narrative is not configured"})
	}

	now := time.Now().UTC()
	start := utils.ParseDateOr(c.Query("startDate"), now.AddDate(0, 0, -analytics.TrailingWindowDays+1))
	end := utils.ParseDateOr(c.Query("endDate"), now)
	if end.Before(start) {
		start, end = now.AddDate(0, 0, -analytics.TrailingWindowDays+1), now
	}

	report, err := engine.BusinessReport(c.Context(), start, end)
	if err != nil {
		log.Printf("❌ [NARRATIVE] Report failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate business report"})
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("❌ [NARRATIVE] Gemini client error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to connect to AI service"})
	}
	defer client.Close()

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to serialize report"})
	}

	prompt := fmt.Sprintf(`You are a retail business analyst. Rewrite the following
inventory and sales report as 2-3 short paragraphs of plain prose for a
store owner. Keep every number exactly as given; do not invent figures.

Report data: %s`, string(reportJSON))

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("❌ [NARRATIVE] Gemini error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate narrative"})
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "No content received from AI"})
	}

	var narrative string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			narrative += string(txt)
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"report": report, "narrative": narrative}})
}
