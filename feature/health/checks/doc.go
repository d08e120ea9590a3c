// Package checks holds the individual health checks: schema drift against the
// catalog models and reachability of the archive bucket.
package checks
