package telemetry

import (
	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct；未啟用時所有欄位為 nil，呼叫端透過方法使用即可
type Metric struct {
	HttpRequestsTotal        *prometheus.CounterVec
	HttpRequestDuration      *prometheus.HistogramVec
	ResponseSuccessTotal     *prometheus.CounterVec
	ResponseFailTotal        *prometheus.CounterVec
	AssignmentsRecordedTotal *prometheus.CounterVec
	SalaryAccruedAmountTotal prometheus.Counter
	LoginRateLimitedTotal    prometheus.Counter
	config                   *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	prefix := metricPrefix(config)
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "API request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		ResponseSuccessTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricResponseSuccessTotal),
				Help: "Successful API responses",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		ResponseFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricResponseFailTotal),
				Help: "Failed API responses",
			},
			labelNames(core.MetricLabelReason),
		),
		AssignmentsRecordedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricAssignmentsRecordedTotal),
				Help: "Worker assignments recorded on production operations",
			},
			labelNames(core.MetricLabelOperation),
		),
		SalaryAccruedAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricSalaryAccruedAmountTotal),
				Help: "Sum of worker salary amounts written by assignments",
			},
		),
		LoginRateLimitedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricLoginRateLimitedTotal),
				Help: "Login attempts rejected by the rate limiter",
			},
		),
	}
}

func (m *Metric) ObserveRequest(endpoint, status string, seconds float64) {
	if m == nil || m.HttpRequestsTotal == nil || m.HttpRequestDuration == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(endpoint, status).Inc()
	m.HttpRequestDuration.WithLabelValues(endpoint).Observe(seconds)
}

func (m *Metric) ResponseSucceeded(endpoint, status string) {
	if m == nil || m.ResponseSuccessTotal == nil {
		return
	}
	m.ResponseSuccessTotal.WithLabelValues(endpoint, status).Inc()
}

func (m *Metric) ResponseFailed(reason string) {
	if m == nil || m.ResponseFailTotal == nil {
		return
	}
	m.ResponseFailTotal.WithLabelValues(reason).Inc()
}

func (m *Metric) AssignmentRecorded(operation string, amount float64) {
	if m == nil || m.AssignmentsRecordedTotal == nil {
		return
	}
	m.AssignmentsRecordedTotal.WithLabelValues(operation).Inc()
	if m.SalaryAccruedAmountTotal != nil && amount > 0 {
		m.SalaryAccruedAmountTotal.Add(amount)
	}
}

func (m *Metric) LoginRateLimited() {
	if m == nil || m.LoginRateLimitedTotal == nil {
		return
	}
	m.LoginRateLimitedTotal.Inc()
}

func metricPrefix(config *config.Configuration) string {
	if config.App.Name == "" {
		return "mohil_"
	}
	return config.App.Name + "_"
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
