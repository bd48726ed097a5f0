package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"orderdash/engine"
)

// HandleFilterSubOrder looks one sub-order up in the latest snapshot and
// returns its per-record profit projection.
// GET /api/v1/filter/:subOrderNo
func HandleFilterSubOrder(c *fiber.Ctx) error {
	subOrderNo := strings.TrimSpace(c.Params("subOrderNo"))
	if subOrderNo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sub Order No required"})
	}

	snap, err := latestSnapshot(c)
	if snap == nil {
		return err
	}

	result, found := engine.LookupSubOrder(snap.Data, subOrderNo)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sub Order No not found"})
	}
	return c.JSON(result)
}
