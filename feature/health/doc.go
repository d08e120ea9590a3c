// Package health exposes liveness and dependency checks under /health.
//
// GET /health pings the database. GET /health/schema reports columns missing
// from the catalog tables. GET /health/storage reports on the archive bucket.
// The routes are public so that orchestrators can probe them without an API key.
package health
