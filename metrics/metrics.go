// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	pollsCreated    prometheus.Counter
	votesRecorded   prometheus.Counter
	voteRejections  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	gatherer        prometheus.Gatherer
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{gatherer: registry}
	m.init(registry)
	return m
}

func (m *Metrics) init(promRegistry prometheus.Registerer) {
	promautoFactory := promauto.With(promRegistry)
	m.pollsCreated = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "sondages_polls_created_total",
		Help: "number of polls created",
	})
	m.votesRecorded = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "sondages_votes_recorded_total",
		Help: "number of ballots recorded",
	})
	m.voteRejections = promautoFactory.NewCounterVec(prometheus.CounterOpts{
		Name: "sondages_vote_rejections_total",
		Help: "number of vote requests refused, by error kind",
	}, []string{"kind"})
	m.requestDuration = promautoFactory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sondages_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
}

func (m *Metrics) PollCreated() {
	if m == nil {
		return
	}
	m.pollsCreated.Inc()
}

func (m *Metrics) VoteRecorded() {
	if m == nil {
		return
	}
	m.votesRecorded.Inc()
}

func (m *Metrics) VoteRejected(kind string) {
	if m == nil {
		return
	}
	m.voteRejections.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
