// Package events publishes inventory events to RabbitMQ.
//
// Each successful ingestion emits an Ingested message on a durable queue so
// downstream consumers can refresh their own views. Publishing is best effort:
// callers log failures and carry on.
package events
