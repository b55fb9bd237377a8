// Package http implements the local control API of the sync client.
//
// It exposes the sync status, manual triggers, durable enqueue, dead-letter
// management and Prometheus metrics over a chi router. Request tracing and
// access logging are handled here before requests reach the sync engine.
package http
