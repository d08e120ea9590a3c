package store

import (
	"context"
	"fmt"

	"inventory-manager/core/cache"
	"inventory-manager/core/metrics"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage"
	"inventory-manager/feature/catalog/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Service serves store listings and reports.
type Service struct {
	db         *gorm.DB
	logger     *zap.Logger
	aggregator *Aggregator
	cache      cache.Cache
	archiver   *storage.Archiver
	sf         singleflight.Group
}

// NewService creates a new store service. archiver may be nil.
func NewService(db *gorm.DB, logger *zap.Logger, topN int, c cache.Cache, archiver *storage.Archiver) *Service {
	if c == nil {
		c = cache.Nop{}
	}
	return &Service{
		db:         db,
		logger:     logger,
		aggregator: NewAggregator(db, topN),
		cache:      c,
		archiver:   archiver,
	}
}

// ListStores returns every store ordered by name.
func (s *Service) ListStores(ctx context.Context) ([]models.Store, error) {
	stores := []models.Store{}
	if err := s.db.WithContext(ctx).Order("name").Order("id").Find(&stores).Error; err != nil {
		return nil, reconcile.Classify("list stores", err)
	}
	return stores, nil
}

// Report returns the report of a store, from cache when possible.
// Concurrent requests for the same store share one build.
func (s *Service) Report(ctx context.Context, storeID uint) (*Report, error) {
	key := cache.ReportKey(storeID)

	if r, ok := s.cached(ctx, key); ok {
		metrics.ReportsGenerated.WithLabelValues("json", "cache").Inc()
		return r, nil
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// Another caller may have filled the cache while we waited.
		if r, ok := s.cached(ctx, key); ok {
			return r, nil
		}

		r, err := s.aggregator.BuildReport(ctx, storeID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, r); err != nil {
			s.logger.Warn("Failed to cache report", zap.Uint("store_id", storeID), zap.Error(err))
		}
		metrics.ReportsGenerated.WithLabelValues("json", "build").Inc()
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Report), nil
}

func (s *Service) cached(ctx context.Context, key string) (*Report, bool) {
	var r Report
	ok, err := s.cache.Get(ctx, key, &r)
	if err != nil {
		s.logger.Warn("Failed to read cached report", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &r, true
}

// RenderReport builds the report of a store and renders it as PDF.
// The rendered document is archived when object storage is enabled.
func (s *Service) RenderReport(ctx context.Context, storeID uint) (string, []byte, error) {
	r, err := s.Report(ctx, storeID)
	if err != nil {
		return "", nil, err
	}

	data, err := RenderPDF(r)
	if err != nil {
		return "", nil, err
	}
	filename := Filename(r)
	metrics.ReportsGenerated.WithLabelValues("pdf", "build").Inc()

	if s.archiver != nil {
		key := fmt.Sprintf("reports/%d/%s", storeID, filename)
		if err := s.archiver.Put(ctx, key, data, "application/pdf"); err != nil {
			s.logger.Warn("Failed to archive report", zap.String("object", key), zap.Error(err))
		}
	}
	return filename, data, nil
}
