package o11y

import "github.com/prometheus/client_golang/prometheus"

const (
	NamespaceETagMetrics = "etag"
)

var (
	// Total entity tags generated; labeled by entity kind (content or stat) and mode
	TagsGenerated *prometheus.CounterVec

	// Total entity tag generation failures; labeled by reason
	TagErrors *prometheus.CounterVec

	// Size of the content that was tagged; stats are not observed
	TaggedContentSize prometheus.Histogram
)

func initTagCollectors() (collectors []prometheus.Collector, err error) {
	collectors = make([]prometheus.Collector, 0, 3)

	TagsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: NamespaceETagMetrics,
		Name:      "tags_generated",
		Help:      "total number of entity tags generated, labeled by entity kind and mode",
	}, []string{"kind", "mode"})
	collectors = append(collectors, TagsGenerated)

	TagErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: NamespaceETagMetrics,
		Name:      "tag_errors",
		Help:      "total number of entity tag generation failures, labeled by reason",
	}, []string{"reason"})
	collectors = append(collectors, TagErrors)

	TaggedContentSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: NamespaceETagMetrics,
		Name:      "content_size",
		Help:      "size in bytes of content hashed into entity tags",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 10), // 64 bytes to 16 MiB
	})
	collectors = append(collectors, TaggedContentSize)

	return collectors, nil
}
