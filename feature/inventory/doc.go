// Package inventory ingests bulk inventory files into the bookstore catalog.
//
// # Pipeline
//
//   - CSVSource streams rows and normalizes the header.
//   - Validate checks one row and produces an InventoryRecord.
//   - Engine reconciles one record: find-or-create author, book and store,
//     then create the listing or restock it (copies+1, new price, sold_out cleared).
//   - Orchestrator validates the whole input first, then reconciles each record
//     in row order, isolating per-record failures.
//
// A single invalid row rejects the upload. A database outage aborts the run.
//
// # HTTP Endpoints
//
//   - POST /api/inventory/upload : multipart field "csv".
package inventory
