// Package metrics はPrometheusメトリクスの収集を提供する。
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace はメトリクス名の既定プレフィックス。
const DefaultNamespace = "userquery"

// QueryRecorder はクエリ実行の記録インターフェース。
// サービス層から利用する。
type QueryRecorder interface {
	RecordQuery(operation string, inputSize int, duration time.Duration)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	queryTotal    *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	inputUsers    prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
// namespaceが空の場合はDefaultNamespaceを使う。
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{
		queryTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_total",
			Help:      "操作別のクエリ実行回数",
		}, []string{"operation"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "操作別のクエリ実行時間（秒）",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"operation"}),
		inputUsers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_input_users",
			Help:      "クエリに渡されたユーザー数",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	reg.MustRegister(
		c.queryTotal,
		c.queryDuration,
		c.inputUsers,
	)

	return c
}

// RecordQuery はクエリの実行を記録する。
func (c *Collector) RecordQuery(operation string, inputSize int, duration time.Duration) {
	c.queryTotal.WithLabelValues(operation).Inc()
	c.queryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	c.inputUsers.Observe(float64(inputSize))
}
