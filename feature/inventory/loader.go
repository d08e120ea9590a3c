package inventory

import (
	"inventory-manager/core/cache"
	"inventory-manager/core/events"
	"inventory-manager/core/middleware/limiter"
	"inventory-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	db      *gorm.DB
	service *Service
	handler *Handler
}

// NewFeature creates a new inventory feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, archiver *storage.Archiver, c cache.Cache, publisher events.Publisher, lim *limiter.Limiter) *Feature {
	svc := NewService(db, logger, archiver, c, publisher)
	return &Feature{db: db, service: svc, handler: NewHandler(svc, lim)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
