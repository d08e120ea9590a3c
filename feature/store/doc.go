// Package store provides store listings and per-store analytics reports.
//
// A report ranks the store's available (not sold out) listings two ways:
//
//   - Top priced: listings by descending price, ties in insertion order.
//   - Prolific authors: authors by the number of distinct books the store
//     carries, ties in order of first appearance.
//
// Reports are cached per store and rebuilt at most once at a time per store.
// The PDF rendering uses go-pdf/fpdf; empty sections print a placeholder.
//
// # HTTP Endpoints
//
//   - GET /api/store : list stores.
//   - GET /api/store/:id/report : JSON report.
//   - GET /api/store/:id/download-report : PDF report attachment.
package store
