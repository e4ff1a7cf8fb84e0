package recordstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	detailCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recordstore",
			Name:      "detail_cache_hits_total",
			Help:      "Detail fetches satisfied from the cache without a fan-out.",
		},
	)

	detailCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recordstore",
			Name:      "detail_cache_misses_total",
			Help:      "Detail fetches that triggered a three-way fan-out.",
		},
	)

	detailFanoutFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recordstore",
			Name:      "detail_fanout_failures_total",
			Help:      "Detail fan-outs whose primary record fetch failed.",
		},
	)

	searchShortCircuits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recordstore",
			Name:      "search_short_circuits_total",
			Help:      "Searches answered empty because the query was under the minimum length.",
		},
	)

	listPagesFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recordstore",
			Name:      "list_pages_fetched_total",
			Help:      "Pages successfully applied to the paginated list.",
		},
	)

	staleDropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recordstore",
			Name:      "stale_completions_dropped_total",
			Help:      "Fetch completions discarded because a newer fetch superseded them.",
		},
		[]string{"slice"},
	)
)
