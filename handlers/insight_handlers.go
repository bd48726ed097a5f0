package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"orderdash/config"
)

// HandleGetInsights narrates the latest snapshot's totals through the
// Gemini API. Optional: requires GEMINI_API_KEY.
// POST /api/v1/insights
func HandleGetInsights(c *fiber.Ctx) error {
	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "error",
			"message": "Insights are not configured",
		})
	}

	snap, err := latestSnapshot(c)
	if snap == nil {
		return err
	}

	totals := snap.Totals
	prompt := fmt.Sprintf(
		"You are an analyst for a reseller order dashboard. Summarize this month's "+
			"performance in three short sentences from these figures: %d delivered orders, "+
			"revenue %.2f, profit %.2f, profit %.2f%% of revenue, profit %.2f%% of cost, "+
			"door-step exchange charges %.2f, %d days in the profit series.",
		totals.SellInMonthProducts,
		totals.DeliveredSupplierDiscountedPriceTotal,
		totals.TotalProfit,
		totals.ProfitPercentRevenue,
		totals.ProfitPercentCost,
		totals.TotalDoorStepExchanger,
		len(snap.ProfitByDate),
	)

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to initialize Gemini client",
		})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error generating insights: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to generate insights",
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": resp})
}
