// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourbot_chat_requests_total",
			Help: "Total number of chat requests by classified intent",
		},
		[]string{"intent"},
	)

	GeneratorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourbot_generator_failures_total",
			Help: "Total number of generator failures by error class",
		},
		[]string{"class"},
	)

	RetrievalDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "tourbot_retrieval_duration_seconds",
			Help: "Duration of per-turn corpus retrieval in seconds",
		},
	)

	CorpusRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tourbot_corpus_records",
			Help: "Number of records loaded per corpus",
		},
		[]string{"corpus"},
	)
)
