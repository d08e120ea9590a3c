package health

import (
	"context"

	"inventory-manager/core/database"
	"inventory-manager/core/storage"
	"inventory-manager/feature/catalog/models"
	"inventory-manager/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs health checks.
type Service struct {
	db       *gorm.DB
	archiver *storage.Archiver
	logger   *zap.Logger
}

// NewService creates a new health service. db and archiver may be nil.
func NewService(db *gorm.DB, archiver *storage.Archiver, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		archiver: archiver,
		logger:   logger,
	}
}

// PingDatabase checks that the database answers.
func (s *Service) PingDatabase(ctx context.Context) error {
	return database.Ping(ctx, s.db)
}

// CheckSchema compares the live schema with the catalog models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.ExpectedColumns())
}

// CheckStorage reports on the archive bucket.
func (s *Service) CheckStorage(ctx context.Context) checks.StorageReport {
	return checks.CheckStorage(ctx, s.archiver)
}
