package http

import (
	"errors"

	"ecoshopper-backend/internal/scan/usecase"
	apperrors "ecoshopper-backend/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
)

// ScanHTTPHandler handles HTTP requests for the scan pipeline
type ScanHTTPHandler struct {
	usecase      usecase.ScanUsecase
	defaultLimit int
}

// NewScanHTTPHandler creates a new scan HTTP handler
func NewScanHTTPHandler(uc usecase.ScanUsecase, defaultLimit int) *ScanHTTPHandler {
	return &ScanHTTPHandler{
		usecase:      uc,
		defaultLimit: defaultLimit,
	}
}

// SetupScanRoutes sets up the scan pipeline routes
func (h *ScanHTTPHandler) SetupScanRoutes(router fiber.Router) {
	router.Get("/test", h.Test)
	router.Post("/scan", h.Scan)
	router.Get("/history", h.History)
}

// Test reports liveness
func (h *ScanHTTPHandler) Test(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Scan handles barcode scan ingestion
func (h *ScanHTTPHandler) Scan(c *fiber.Ctx) error {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.usecase.Scan(c.UserContext(), req.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidBarcode) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid barcode",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record scan",
		})
	}

	return c.JSON(record)
}

// History returns the most recent scans, newest first
func (h *ScanHTTPHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.defaultLimit)

	records, err := h.usecase.History(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch scan history",
		})
	}

	return c.JSON(records)
}
