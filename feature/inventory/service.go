package inventory

import (
	"bytes"
	"context"
	"io"
	"time"

	"inventory-manager/core/cache"
	"inventory-manager/core/events"
	"inventory-manager/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs ingestions and their side effects: archiving the upload,
// flushing cached reports of touched stores and publishing an event.
type Service struct {
	logger       *zap.Logger
	orchestrator *Orchestrator
	archiver     *storage.Archiver
	cache        cache.Cache
	publisher    events.Publisher
	now          func() time.Time
}

// NewService creates a new inventory service. archiver may be nil.
func NewService(db *gorm.DB, logger *zap.Logger, archiver *storage.Archiver, c cache.Cache, publisher events.Publisher) *Service {
	if c == nil {
		c = cache.Nop{}
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		logger:       logger,
		orchestrator: NewOrchestrator(NewEngine(db), logger),
		archiver:     archiver,
		cache:        c,
		publisher:    publisher,
		now:          time.Now,
	}
}

// Ingest parses r as CSV and reconciles every record.
func (s *Service) Ingest(ctx context.Context, r io.Reader) (*Summary, error) {
	uploadID := uuid.NewString()
	l := s.logger.With(zap.String("upload_id", uploadID))
	l.Info("Ingestion started")

	var raw bytes.Buffer
	if s.archiver != nil {
		r = io.TeeReader(r, &raw)
	}

	summary, err := s.orchestrator.Ingest(ctx, NewCSVSource(r))
	if summary != nil {
		summary.UploadID = uploadID
		s.invalidate(ctx, l, summary.StoreIDs)
	}
	if err != nil {
		return summary, err
	}

	s.archive(ctx, l, uploadID, raw.Bytes())
	s.publish(ctx, l, summary)
	return summary, nil
}

func (s *Service) archive(ctx context.Context, l *zap.Logger, uploadID string, data []byte) {
	if s.archiver == nil {
		return
	}
	key := "uploads/" + s.now().UTC().Format("2006-01-02") + "/" + uploadID + ".csv"
	if err := s.archiver.Put(ctx, key, data, "text/csv"); err != nil {
		l.Warn("Failed to archive upload", zap.String("object", key), zap.Error(err))
		return
	}
	l.Debug("Archived upload", zap.String("object", key))
}

func (s *Service) invalidate(ctx context.Context, l *zap.Logger, storeIDs []uint) {
	if len(storeIDs) == 0 {
		return
	}
	keys := make([]string, len(storeIDs))
	for i, id := range storeIDs {
		keys[i] = cache.ReportKey(id)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		l.Warn("Failed to flush cached reports", zap.Int("stores", len(keys)), zap.Error(err))
	}
}

func (s *Service) publish(ctx context.Context, l *zap.Logger, summary *Summary) {
	evt := events.Ingested{
		UploadID:     summary.UploadID,
		TotalRecords: summary.TotalRecords,
		Created:      summary.Created,
		Updated:      summary.Updated,
		Errors:       len(summary.Errors),
		StoreIDs:     summary.StoreIDs,
		At:           s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		l.Warn("Failed to publish ingestion event", zap.Error(err))
	}
}
