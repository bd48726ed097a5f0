package handlers

import (
	"github.com/gofiber/fiber/v2"

	"orderdash/models"
)

// HandleGetDashboard serves the dashboard view of the latest snapshot.
// GET /api/v1/dashboard
func HandleGetDashboard(c *fiber.Ctx) error {
	snap, err := latestSnapshot(c)
	if snap == nil {
		return err
	}
	return c.JSON(snap.Dashboard())
}

// HandleGetProfitGraph serves the latest snapshot's daily profit series.
// GET /api/v1/profit-graph
func HandleGetProfitGraph(c *fiber.Ctx) error {
	snap, err := latestSnapshot(c)
	if snap == nil {
		return err
	}
	series := snap.ProfitByDate
	if series == nil {
		series = []models.DailyProfitPoint{}
	}
	return c.JSON(series)
}
