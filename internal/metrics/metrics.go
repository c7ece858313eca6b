package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SupportEvaluationCounter *prometheus.CounterVec

	DispatchFallthroughCounter *prometheus.CounterVec

	AssemblyCounter        *prometheus.CounterVec
	AssemblyRunTimeSummary *prometheus.SummaryVec

	IdentityReadErrorCount *prometheus.CounterVec

	ErrMetricsExport = errors.New("error exporting metrics")
)

func init() {
	SupportEvaluationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwmanager_support_evaluations",
			Help: "A counter metric to measure the total count of hardware support evaluations, by manager and reported support",
		},
		[]string{"manager", "support"},
	)

	DispatchFallthroughCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwmanager_dispatch_fallthrough",
			Help: "A counter metric to measure the total count of accessor calls a hardware manager could not serve",
		},
		[]string{"method", "manager"},
	)

	AssemblyCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwmanager_inventory_assemblies",
			Help: "A counter metric to measure the total count of inventory assemblies, successful and failed",
		},
		[]string{"state"},
	)

	AssemblyRunTimeSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "hwmanager_inventory_assembly_duration_seconds",
			Help: "A summary metric to measure the total time spent in assembling the hardware inventory",
		},
		[]string{"state"},
	)

	IdentityReadErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwmanager_identity_read_error_count",
			Help: "A counter metric to measure the total count of errors reading the firmware identity attributes.",
		},
		[]string{"manager"},
	)
}

// WriteTextfile writes the registered metrics in the prometheus text format to the given file,
// for the node_exporter textfile collector to pick up.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.Wrap(ErrMetricsExport, err.Error())
	}

	return nil
}
