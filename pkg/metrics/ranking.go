package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the offer ranking path, flatten through top-K.
	RankLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ranking_rank_latency_seconds",
		Help:    "Latency of offer ranking requests",
		Buckets: prometheus.DefBuckets,
	})

	RankRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_rank_requests_total",
			Help: "Count of ranking requests by outcome and active strategy.",
		},
		[]string{"outcome", "strategy"},
	)

	OffersScoredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ranking_offers_scored_total",
		Help: "Total number of offer rows scored",
	})
)

func Init() {
	prometheus.MustRegister(
		RankLatency,
		RankRequestsTotal,
		OffersScoredTotal,
	)
}
