package checks

import (
	"context"

	"inventory-manager/core/storage"
)

// StorageReport describes the archive bucket.
type StorageReport struct {
	Enabled bool   `json:"enabled"`
	Bucket  string `json:"bucket,omitempty"`
	Exists  bool   `json:"exists"`
	Status  string `json:"status"` // "ok", "disabled", "missing", "error"
	Error   string `json:"error,omitempty"`
}

// CheckStorage reports whether the archive bucket is reachable.
// A nil archiver means archiving is turned off, which is not an error.
func CheckStorage(ctx context.Context, archiver *storage.Archiver) StorageReport {
	if archiver == nil {
		return StorageReport{Status: "disabled"}
	}

	report := StorageReport{Enabled: true, Bucket: archiver.Bucket()}
	exists, err := archiver.CheckBucket(ctx)
	switch {
	case err != nil:
		report.Status = "error"
		report.Error = err.Error()
	case !exists:
		report.Status = "missing"
	default:
		report.Exists = true
		report.Status = "ok"
	}
	return report
}

// Healthy reports whether the report needs no attention.
func (r StorageReport) Healthy() bool {
	return r.Status == "ok" || r.Status == "disabled"
}
