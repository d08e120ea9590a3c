// Package cache provides a small cache-aside layer for store reports.
//
// Values are JSON encoded and kept in Redis with a fixed TTL. A miss is not an
// error: Get reports false and callers rebuild the value from the database.
// When caching is disabled New returns Nop, which always misses.
package cache
