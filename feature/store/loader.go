package store

import (
	"inventory-manager/core/cache"
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

// NewFeature creates a new store feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, topN int, c cache.Cache, archiver *storage.Archiver) *Feature {
	svc := NewService(db, logger, topN, c, archiver)
	return &Feature{db: db, service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "store"
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
