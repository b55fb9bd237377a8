// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the sync engine's Prometheus metrics. A nil
// *SyncMetrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pass results.
const (
	PassCompleted = "completed"
	PassError     = "error"
	PassOffline   = "offline"
)

// Mutation outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeRetry      = "retry"
	OutcomeDeadLetter = "dead_letter"
	OutcomeSuperseded = "superseded"
)

type SyncMetrics struct {
	PassesTotal    *prometheus.CounterVec   // result=completed|error|offline
	MutationsTotal *prometheus.CounterVec   // result=success|retry|dead_letter|superseded
	DispatchMS     *prometheus.HistogramVec // kind=<mutation kind>
	RefreshTotal   *prometheus.CounterVec   // result=success|fail
	PullsTotal     *prometheus.CounterVec   // entity=order|device|client|ticket, result=success|fail

	Pending     prometheus.Gauge
	DeadLetters prometheus.Gauge
	Reachable   prometheus.Gauge

	registry *prometheus.Registry
}

// NewSyncMetrics registers the metrics on a fresh registry so several
// engines (tests) can coexist in one process.
func NewSyncMetrics() *SyncMetrics {
	m := &SyncMetrics{
		PassesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_passes_total",
				Help: "Total sync passes by result",
			},
			[]string{"result"},
		),
		MutationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_mutations_total",
				Help: "Total mutation dispatches by outcome",
			},
			[]string{"result"},
		),
		DispatchMS: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sync_dispatch_latency_ms",
				Help:    "Latency of mutation dispatches (ms)",
				Buckets: prometheus.ExponentialBuckets(5, 2, 12), // 5ms .. ~10s
			},
			[]string{"kind"},
		),
		RefreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_token_refresh_total",
				Help: "Total credential refreshes requested by the sync engine",
			},
			[]string{"result"},
		),
		PullsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_list_pulls_total",
				Help: "Total server list pulls by entity type and result",
			},
			[]string{"entity", "result"},
		),
		Pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sync_pending_mutations",
			Help: "Number of queued mutations awaiting sync",
		}),
		DeadLetters: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sync_dead_letter_mutations",
			Help: "Number of dead-lettered mutations awaiting manual resolution",
		}),
		Reachable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "network_reachable",
			Help: "1 when the API is reachable",
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.PassesTotal,
		m.MutationsTotal,
		m.DispatchMS,
		m.RefreshTotal,
		m.PullsTotal,
		m.Pending,
		m.DeadLetters,
		m.Reachable,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *SyncMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *SyncMetrics) Pass(result string) {
	if m == nil {
		return
	}
	m.PassesTotal.WithLabelValues(result).Inc()
}

func (m *SyncMetrics) Mutation(result string) {
	if m == nil {
		return
	}
	m.MutationsTotal.WithLabelValues(result).Inc()
}

func (m *SyncMetrics) Dispatched(kind string, took time.Duration) {
	if m == nil {
		return
	}
	m.DispatchMS.WithLabelValues(kind).Observe(float64(took.Microseconds()) / 1000)
}

func (m *SyncMetrics) Refresh(ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "fail"
	}
	m.RefreshTotal.WithLabelValues(result).Inc()
}

func (m *SyncMetrics) Pulled(entity string, ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "fail"
	}
	m.PullsTotal.WithLabelValues(entity, result).Inc()
}

// QueueSize records the current pending and dead-letter counts.
func (m *SyncMetrics) QueueSize(pending, dead int) {
	if m == nil {
		return
	}
	m.Pending.Set(float64(pending))
	m.DeadLetters.Set(float64(dead))
}

func (m *SyncMetrics) SetReachable(reachable bool) {
	if m == nil {
		return
	}
	if reachable {
		m.Reachable.Set(1)
		return
	}
	m.Reachable.Set(0)
}
