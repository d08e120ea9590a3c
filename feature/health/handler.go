package health

import (
	"inventory-manager/core/logger"
	"inventory-manager/feature/health/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleHealth)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleHealth reports liveness and database reachability.
// @Summary Health
// @Description Returns 200 when the database answers a ping, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Healthy"
// @Failure 503 {object} map[string]string "Database unavailable"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	if err := h.service.PingDatabase(c.UserContext()); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Database ping failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unavailable",
			"database": "down",
			"error":    err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": "up",
	})
}

// HandleSchemaCheck compares the database schema with the catalog models.
// @Summary Check Schema
// @Description Verifies that the authors, books, stores and store_books tables carry every expected column.
// @Tags health
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema drift detected", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleStorageCheck reports on the archive bucket.
// @Summary Check Storage
// @Description Checks that the archive bucket exists. Reports "disabled" when archiving is off.
// @Tags health
// @Produce json
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 503 {object} checks.StorageReport "Bucket unreachable or missing"
// @Router /health/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	report := h.service.CheckStorage(c.UserContext())
	if !report.Healthy() {
		logger.WithRayID(h.service.logger, c).Warn("Storage check failed",
			zap.String("bucket", report.Bucket),
			zap.String("status", report.Status),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// Referenced by the swagger annotations.
var _ = checks.SchemaReport{}
