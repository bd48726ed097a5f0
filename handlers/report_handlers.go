package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"orderdash/report"
)

// HandleDownloadReport renders the latest snapshot as a PDF report.
// GET /api/v1/download
func HandleDownloadReport(c *fiber.Ctx) error {
	snap, err := latestSnapshot(c)
	if snap == nil {
		return err
	}

	pdf, err := report.Generate(snap)
	if err != nil {
		log.Printf("Error generating PDF report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="dashboard-report.pdf"`)
	return c.Send(pdf)
}
