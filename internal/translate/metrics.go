package translate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the pipeline's Prometheus collectors.
type Metrics struct {
	// Units counts processed compilation units.
	// Labels: result (ok, failed)
	Units *prometheus.CounterVec

	// PassRuns counts pass executions.
	// Labels: pass, result (ok, failed)
	PassRuns *prometheus.CounterVec

	// PassDuration measures the time spent in each pass.
	// Labels: pass
	PassDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Units: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "j2o",
			Subsystem: "translate",
			Name:      "units_total",
			Help:      "Compilation units run through the pass pipeline",
		}, []string{"result"}),
		PassRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "j2o",
			Subsystem: "translate",
			Name:      "pass_runs_total",
			Help:      "Pass executions by pass and result",
		}, []string{"pass", "result"}),
		PassDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "j2o",
			Subsystem: "translate",
			Name:      "pass_duration_seconds",
			Help:      "Time spent running a pass over one unit",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"pass"}),
	}
}

func result(err error) string {
	if err != nil {
		return "failed"
	}
	return "ok"
}
