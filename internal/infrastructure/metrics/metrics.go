package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the news backend
type Metrics struct {
	// News listing metrics
	NewsRequestsTotal   prometheus.Counter
	NewsItemsReturned   prometheus.Counter
	NewsRequestDuration prometheus.Histogram
	ChannelFetchErrors  *prometheus.CounterVec

	// Media proxy metrics
	MediaRequestsTotal prometheus.Counter
	MediaNotFoundTotal prometheus.Counter
	MediaBytesServed   prometheus.Counter
	MediaFetchDuration prometheus.Histogram
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics()
	})
	return DefaultMetrics
}

// NewMetrics creates a new Metrics instance with all counters and histograms
func NewMetrics() *Metrics {
	return &Metrics{
		NewsRequestsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "news_backend_news_requests_total",
			Help: "Total number of news listing requests",
		}),
		NewsItemsReturned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "news_backend_news_items_returned_total",
			Help: "Total number of news items returned to clients",
		}),
		NewsRequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "news_backend_news_request_duration_seconds",
			Help:    "Duration of news listing requests",
			Buckets: prometheus.DefBuckets,
		}),
		ChannelFetchErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "news_backend_channel_fetch_errors_total",
				Help: "Total number of per-channel resolution or fetch failures",
			},
			[]string{"reason"},
		),
		MediaRequestsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "news_backend_media_requests_total",
			Help: "Total number of media proxy requests",
		}),
		MediaNotFoundTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "news_backend_media_not_found_total",
			Help: "Total number of media proxy requests with no downloadable media",
		}),
		MediaBytesServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "news_backend_media_bytes_served_total",
			Help: "Total bytes of media streamed to clients",
		}),
		MediaFetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "news_backend_media_fetch_duration_seconds",
			Help:    "Duration of media download and streaming",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}

// RecordNewsRequest records one news listing request with its duration and item count
func (m *Metrics) RecordNewsRequest(items int, durationSeconds float64) {
	m.NewsRequestsTotal.Inc()
	m.NewsRequestDuration.Observe(durationSeconds)
	if items > 0 {
		m.NewsItemsReturned.Add(float64(items))
	}
}

// RecordChannelFetchError records a per-channel failure by reason
func (m *Metrics) RecordChannelFetchError(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	m.ChannelFetchErrors.WithLabelValues(reason).Inc()
}

// RecordMediaRequest records one media proxy request
func (m *Metrics) RecordMediaRequest(bytes int, durationSeconds float64) {
	m.MediaRequestsTotal.Inc()
	m.MediaFetchDuration.Observe(durationSeconds)
	if bytes > 0 {
		m.MediaBytesServed.Add(float64(bytes))
	}
}

// RecordMediaNotFound records a media proxy miss
func (m *Metrics) RecordMediaNotFound() {
	m.MediaNotFoundTotal.Inc()
}
