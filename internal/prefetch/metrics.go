package prefetch

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recordstore",
			Subsystem: "prefetch",
			Name:      "submissions_total",
			Help:      "Warm-up fetches accepted into the prefetch queues.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recordstore",
			Subsystem: "prefetch",
			Name:      "queue_full_total",
			Help:      "Warm-up fetches rejected because a shard queue stayed full.",
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "recordstore",
			Subsystem: "prefetch",
			Name:      "queue_depth",
			Help:      "Current number of queued warm-up fetches per shard.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recordstore",
			Subsystem: "prefetch",
			Name:      "run_duration_seconds",
			Help:      "Latency of one warm-up fetch.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"shard"},
	)
)

func labelFor(shard int) string { return strconv.Itoa(shard) }
