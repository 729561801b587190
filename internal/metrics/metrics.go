package metrics

import (
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	StoreEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antifakenews_store_events_total",
			Help: "Total number of store mutations by event type",
		},
		[]string{"type"},
	)

	VotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antifakenews_votes_total",
			Help: "Total number of votes cast through the API",
		},
		[]string{"choice"},
	)

	GeneratedVotesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "antifakenews_generated_votes_total",
			Help: "Total number of synthetic votes added by boost, prime and randomize",
		},
	)

	NewsItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "antifakenews_news_items",
			Help: "Number of news items currently held by the store",
		},
	)

	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "storage"},
	)
)

func Init(serviceName, version, storageDriver string) {
	ApplicationInfo.WithLabelValues(serviceName, version, storageDriver).Set(1)
}

// Listener returns a store listener that records events and keeps the news
// gauge in sync with s.
func Listener(s *store.Store) store.Listener {
	NewsItems.Set(float64(len(s.News())))

	return func(e store.Event) {
		StoreEventsTotal.WithLabelValues(string(e.Type)).Inc()

		switch e.Type {
		case store.EventVoteAdded:
			VotesTotal.WithLabelValues(string(e.Choice)).Inc()
		case store.EventSeedVotesBoosted, store.EventSeedStatusesPrimed, store.EventEngagementRandomized:
			GeneratedVotesTotal.Add(float64(e.Count))
		case store.EventNewsAdded, store.EventNewsImported, store.EventImportedCleared,
			store.EventAllNewsRemoved, store.EventMockDataReset:
			NewsItems.Set(float64(len(s.News())))
		}
	}
}
