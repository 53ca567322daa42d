// Package metrics 基于Prometheus的指标收集
//
// 指标类型:
//   - Counter: 只增不减的累计值(请求总数、查询总数)
//   - Gauge: 可增可减的瞬时值(处理中的请求数、熔断器状态)
//   - Histogram: 观测值分布(请求耗时、每页数量)
//
// 命名规范: Counter以_total结尾,Histogram以单位结尾(_seconds)。
//
// 所有方法对nil *Metrics安全,未启用指标时组件无需判空。
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 进程内的指标集合
type Metrics struct {
	// HTTPRequestsTotal HTTP请求总数,标签:method、path、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时,标签:method、path
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// BookListQueriesTotal 图书列表查询总数,标签:sort_field、sort_order、result
	BookListQueriesTotal *prometheus.CounterVec

	// BookListPageSize 请求的每页数量分布
	BookListPageSize prometheus.Histogram

	// BookListResultSize 实际返回条数分布
	BookListResultSize prometheus.Histogram

	// CircuitBreakerState 熔断器状态,0=CLOSED 1=OPEN 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求数,标签:name、result(success/failure/rejected)
	CircuitBreakerRequests *prometheus.CounterVec
}

// New 创建并注册所有指标
// reg为nil时注册到prometheus默认Registry;测试中传入prometheus.NewRegistry()避免重复注册
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 1ms、10ms、100ms、500ms、1s、5s、10s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInProgress: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		),
		BookListQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_list_queries_total",
				Help: "图书列表查询总数",
			},
			[]string{"sort_field", "sort_order", "result"},
		),
		BookListPageSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "book_list_page_size",
				Help:    "图书列表请求的每页数量",
				Buckets: []float64{1, 5, 10, 20, 50, 100, 500},
			},
		),
		BookListResultSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "book_list_result_size",
				Help:    "图书列表实际返回条数",
				Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
			},
		),
		CircuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		),
		CircuitBreakerRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuit_breaker_requests_total",
				Help: "熔断器请求总数",
			},
			[]string{"name", "result"},
		),
	}
}

// ObserveHTTPRequest 记录一次HTTP请求
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// IncInProgress 处理中请求数+1
func (m *Metrics) IncInProgress() {
	if m == nil {
		return
	}
	m.HTTPRequestsInProgress.Inc()
}

// DecInProgress 处理中请求数-1
func (m *Metrics) DecInProgress() {
	if m == nil {
		return
	}
	m.HTTPRequestsInProgress.Dec()
}

// ObserveBookList 记录一次列表查询
func (m *Metrics) ObserveBookList(sortField, sortOrder string, pageSize, returned int, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.BookListQueriesTotal.WithLabelValues(sortField, sortOrder, result).Inc()
	if err == nil {
		m.BookListPageSize.Observe(float64(pageSize))
		m.BookListResultSize.Observe(float64(returned))
	}
}

// SetBreakerState 设置熔断器状态
func (m *Metrics) SetBreakerState(name string, state int) {
	if m == nil {
		return
	}
	m.CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// IncBreakerRequest 熔断器请求计数
func (m *Metrics) IncBreakerRequest(name, result string) {
	if m == nil {
		return
	}
	m.CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}
