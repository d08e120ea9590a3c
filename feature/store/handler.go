package store

import (
	"errors"
	"fmt"

	"inventory-manager/core/logger"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stores.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the store routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/store")
	group.Get("/", h.HandleListStores)
	group.Get("/:id/report", h.HandleReport)
	group.Get("/:id/download-report", h.HandleDownloadReport)
}

// HandleListStores lists every store.
// @Summary List Stores
// @Description Returns all stores ordered by name.
// @Tags store
// @Produce json
// @Success 200 {object} map[string]interface{} "Stores"
// @Failure 503 {object} map[string]string "Database unavailable"
// @Router /api/store [get]
func (h *Handler) HandleListStores(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stores, err := h.service.ListStores(c.UserContext())
	if err != nil {
		l.Error("Failed to list stores", zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Stores retrieved successfully",
		"count":   len(stores),
		"stores":  stores,
	})
}

// HandleReport returns a store report as JSON.
// @Summary Store Report
// @Description Top priced books and most prolific authors among the store's available listings.
// @Tags store
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} Report "Report"
// @Failure 400 {object} map[string]string "Invalid store ID"
// @Failure 404 {object} map[string]string "Store not found"
// @Router /api/store/{id}/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	id, ok := utils.ParseID(c.Params("id"))
	if !ok {
		return invalidID(c)
	}

	r, err := h.service.Report(c.UserContext(), id)
	if err != nil {
		if !errors.Is(err, ErrStoreNotFound) {
			logger.WithRayID(h.service.logger, c).Error("Failed to build report", zap.Uint("store_id", id), zap.Error(err))
		}
		return writeError(c, err)
	}
	return c.JSON(r)
}

// HandleDownloadReport returns a store report as a PDF attachment.
// @Summary Download Store Report
// @Description Renders the store report as a PDF document.
// @Tags store
// @Produce application/pdf
// @Param id path int true "Store ID"
// @Success 200 {file} file "PDF report"
// @Failure 400 {object} map[string]string "Invalid store ID"
// @Failure 404 {object} map[string]string "Store not found"
// @Router /api/store/{id}/download-report [get]
func (h *Handler) HandleDownloadReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := utils.ParseID(c.Params("id"))
	if !ok {
		return invalidID(c)
	}

	filename, data, err := h.service.RenderReport(c.UserContext(), id)
	if err != nil {
		if !errors.Is(err, ErrStoreNotFound) {
			l.Error("Failed to render report", zap.Uint("store_id", id), zap.Error(err))
		}
		return writeError(c, err)
	}

	l.Info("Report downloaded", zap.Uint("store_id", id), zap.String("file", filename))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Invalid store ID",
		"message": "Store ID must be a valid positive integer",
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrStoreNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Store not found",
			"message": err.Error(),
		})
	case errors.Is(err, reconcile.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "Service Unavailable",
			"message": "database is unavailable, try again later",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": err.Error(),
		})
	}
}
