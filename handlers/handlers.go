package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"orderdash/models"
	"orderdash/store"
)

// Snapshots is the snapshot store the handlers read and append. main wires
// the Postgres store; tests wire the in-memory one.
var Snapshots store.SnapshotStore

// latestSnapshot fetches the most recent snapshot. When there is none or
// the store fails it writes the error response itself and returns a nil
// snapshot along with the response writer's error for the handler to
// propagate.
func latestSnapshot(c *fiber.Ctx) (*models.Snapshot, error) {
	snap, err := Snapshots.Latest(c.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No data found"})
		}
		log.Printf("Error fetching latest snapshot: %v", err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load snapshot"})
	}
	return snap, nil
}
