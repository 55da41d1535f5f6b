// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "biolink"

var (
	ProfileRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_refresh_total",
			Help:      "Profile cache refresh cycles by result",
		},
		[]string{"result"},
	)

	ProfileRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "profile_refresh_duration_seconds",
			Help:      "Duration of profile cache refresh cycles",
			Buckets:   prometheus.DefBuckets,
		},
	)

	CachedProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cached_profiles",
			Help:      "Profiles held by the current cache snapshot",
		},
	)

	PresenceFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "presence_fetch_total",
			Help:      "Presence lookups by provider and result",
		},
		[]string{"provider", "result"},
	)

	ViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "views_total",
			Help:      "Page views counted since process start",
		},
	)
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
)
