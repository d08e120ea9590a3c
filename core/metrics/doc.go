// Package metrics defines the Prometheus collectors for the inventory manager
// and the Fiber glue to record and expose them.
//
// Collectors are registered once on the default registry through promauto.
// Middleware records per-route request counters and latency; Handler serves
// /metrics.
package metrics
