package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"orderdash/engine"
	"orderdash/ingest"
)

// HandleUpload ingests an order export, runs classification and
// aggregation over it, appends the resulting snapshot to the store and
// returns the dashboard view of the new snapshot.
// POST /api/v1/upload
func HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %q: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process file"})
	}
	defer file.Close()

	rows, err := ingest.DecodeFile(fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file format"})
		}
		log.Printf("Error decoding uploaded file %q: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process file"})
	}

	snap, err := engine.BuildSnapshot(rows)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No data to save"})
		}
		log.Printf("Error building snapshot from %q: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process file"})
	}

	if err := Snapshots.Append(c.Context(), snap); err != nil {
		log.Printf("Error saving snapshot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save data"})
	}

	return c.JSON(snap.Dashboard())
}
