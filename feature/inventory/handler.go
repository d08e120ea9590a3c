package inventory

import (
	"errors"
	"path/filepath"
	"strings"

	"inventory-manager/core/logger"
	"inventory-manager/core/metrics"
	"inventory-manager/core/middleware/limiter"
	"inventory-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var csvMimeTypes = map[string]struct{}{
	"text/csv":                 {},
	"application/csv":          {},
	"application/vnd.ms-excel": {},
}

// Handler handles HTTP requests for inventory uploads.
type Handler struct {
	service *Service
	limiter *limiter.Limiter
}

// NewHandler creates a new HTTP handler. A nil limiter leaves uploads unbounded.
func NewHandler(service *Service, lim *limiter.Limiter) *Handler {
	return &Handler{service: service, limiter: lim}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/inventory")
	if h.limiter != nil {
		group.Post("/upload", h.limiter.Handler(metrics.UploadsRejected.Inc), h.HandleUpload)
		return
	}
	group.Post("/upload", h.HandleUpload)
}

// HandleUpload ingests an inventory CSV.
// @Summary Upload Inventory CSV
// @Description Validates every row, then reconciles each record into authors, books, stores and listings. A single invalid row rejects the whole file.
// @Tags inventory
// @Accept multipart/form-data
// @Produce json
// @Param csv formData file true "Inventory CSV with store_name, store_address, book_name, pages, author_name, price"
// @Success 200 {object} map[string]interface{} "Summary"
// @Failure 400 {object} map[string]string "Invalid file or row"
// @Failure 429 {object} map[string]string "Too many uploads"
// @Failure 503 {object} map[string]string "Database unavailable"
// @Router /api/inventory/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("csv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "CSV file is required",
			"message": "attach the inventory as multipart field 'csv'",
		})
	}
	if !isCSV(fh.Filename, fh.Header.Get(fiber.HeaderContentType)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid file type",
			"message": "Only CSV files are allowed",
		})
	}

	f, err := fh.Open()
	if err != nil {
		l.Error("Failed to open uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "failed to read uploaded file",
		})
	}
	defer f.Close()

	summary, err := h.service.Ingest(c.UserContext(), f)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation Error",
				"message": err.Error(),
			})
		case errors.Is(err, reconcile.ErrStorageUnavailable):
			l.Error("Upload aborted", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":   "Service Unavailable",
				"message": "database is unavailable, try again later",
			})
		default:
			l.Error("Upload failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Internal Server Error",
				"message": err.Error(),
			})
		}
	}

	l.Info("Inventory uploaded",
		zap.String("file", fh.Filename),
		zap.String("upload_id", summary.UploadID),
		zap.Int("total", summary.TotalRecords),
	)

	resp := fiber.Map{
		"message": "CSV processed successfully",
		"summary": summary.Counts(),
	}
	if len(summary.Errors) > 0 {
		resp["errors"] = summary.Errors
	}
	return c.JSON(resp)
}

func isCSV(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return true
	}
	mt := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	_, ok := csvMimeTypes[mt]
	return ok
}
