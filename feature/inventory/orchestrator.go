package inventory

import (
	"context"
	"errors"
	"io"
	"time"

	"inventory-manager/core/metrics"
	"inventory-manager/core/reconcile"

	"go.uber.org/zap"
)

// Reconciler applies one validated record to storage.
type Reconciler interface {
	Reconcile(ctx context.Context, rec InventoryRecord) (Result, error)
}

// Orchestrator drives an ingestion run: validate every row, then reconcile
// the records one after another.
type Orchestrator struct {
	engine Reconciler
	logger *zap.Logger
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(engine Reconciler, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{engine: engine, logger: logger}
}

type pending struct {
	row    int
	record InventoryRecord
}

// Ingest consumes src and returns the run summary.
//
// Any validation failure rejects the whole input before anything is written.
// A record that fails to reconcile is recorded in Summary.Errors and the run
// continues. Storage unavailability aborts the run; the partial summary is
// returned together with the error.
func (o *Orchestrator) Ingest(ctx context.Context, src RowSource) (*Summary, error) {
	start := time.Now()
	defer func() { metrics.IngestDuration.Observe(time.Since(start).Seconds()) }()

	var records []pending
	for row := 1; ; row++ {
		raw, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			o.logger.Info("Rejected inventory input", zap.Error(err))
			return nil, err
		}
		rec, err := Validate(raw, row)
		if err != nil {
			o.logger.Info("Rejected inventory input", zap.Int("row", row), zap.Error(err))
			return nil, err
		}
		records = append(records, pending{row: row, record: rec})
	}

	summary := &Summary{TotalRecords: len(records)}
	touched := make(map[uint]struct{})

	for _, p := range records {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res, err := o.engine.Reconcile(ctx, p.record)
		if err != nil {
			if errors.Is(err, reconcile.ErrStorageUnavailable) {
				o.logger.Error("Storage unavailable, aborting ingestion",
					zap.Int("row", p.row),
					zap.Int("processed", summary.Created+summary.Updated+len(summary.Errors)),
					zap.Error(err),
				)
				return summary, err
			}
			rerr := &ReconciliationError{Row: p.row, Record: p.record, Err: err}
			o.logger.Warn("Failed to reconcile record", zap.Int("row", p.row), zap.Error(err))
			summary.Errors = append(summary.Errors, RecordError{Row: p.row, Record: p.record, Error: rerr.Error()})
			metrics.RecordsProcessed.WithLabelValues(metrics.OutcomeFailed).Inc()
			continue
		}

		if res.Created {
			summary.Created++
			metrics.RecordsProcessed.WithLabelValues(metrics.OutcomeCreated).Inc()
		} else {
			summary.Updated++
			metrics.RecordsProcessed.WithLabelValues(metrics.OutcomeUpdated).Inc()
		}
		if _, ok := touched[res.StoreID]; !ok {
			touched[res.StoreID] = struct{}{}
			summary.StoreIDs = append(summary.StoreIDs, res.StoreID)
		}
	}

	o.logger.Info("Ingestion finished",
		zap.Int("total", summary.TotalRecords),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("errors", len(summary.Errors)),
	)
	return summary, nil
}
