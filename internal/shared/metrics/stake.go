package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StakeMetrics agrupa os coletores do stake-service
type StakeMetrics struct {
	Requests  *prometheus.CounterVec   // por outcome: ok | malformed | unauthorized | error
	Duration  *prometheus.HistogramVec // latência por outcome
	Published *prometheus.CounterVec   // eventos stake_recorded: ok | error
}

// NewStakeMetrics cria e registra os coletores no registerer informado
func NewStakeMetrics(reg prometheus.Registerer) *StakeMetrics {
	m := &StakeMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stake_requests_total",
			Help: "requisições de stake por resultado",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stake_request_duration_seconds",
			Help:    "latência das requisições de stake",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		Published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stake_events_published_total",
			Help: "publicações de stake_recorded por resultado",
		}, []string{"result"}),
	}
	reg.MustRegister(m.Requests, m.Duration, m.Published)
	return m
}

// ObserveRequest é o callback usado pelo handler HTTP
func (m *StakeMetrics) ObserveRequest(outcome string, d time.Duration) {
	m.Requests.WithLabelValues(outcome).Inc()
	m.Duration.WithLabelValues(outcome).Observe(d.Seconds())
}

// ObservePublish é o callback usado pelo recorder após publicar no Kafka
func (m *StakeMetrics) ObservePublish(err error) {
	if err != nil {
		m.Published.WithLabelValues("error").Inc()
		return
	}
	m.Published.WithLabelValues("ok").Inc()
}
